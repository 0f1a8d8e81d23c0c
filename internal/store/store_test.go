package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_MissingKey(t *testing.T) {
	s := openTestStore(t)

	value, ok, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok {
		t.Errorf("ok = true for missing key, want false")
	}
	if value != "" {
		t.Errorf("value = %q, want empty", value)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "storeProducts", `[{"id":"p-1"}]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	value, ok, err := s.Get(ctx, "storeProducts")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if value != `[{"id":"p-1"}]` {
		t.Errorf("value = %q, want stored JSON", value)
	}
}

func TestSet_OverwritesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	value, _, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if value != "second" {
		t.Errorf("value = %q, want %q", value, "second")
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	_, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok {
		t.Error("key still present after Delete()")
	}

	// Deleting an absent key is not an error.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() of absent key failed: %v", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	if err := s1.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	s1.Close()

	// Reopening keeps data and reapplies the schema without error.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s2.Close()

	value, ok, err := s2.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || value != "v" {
		t.Errorf("value = %q ok = %v, want persisted %q", value, ok, "v")
	}
}
