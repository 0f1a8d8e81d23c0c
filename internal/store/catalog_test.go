package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/ovchar/storenav/internal/catalog"
)

func TestLoadCatalog_FreshDatabaseIsEmpty(t *testing.T) {
	s := openTestStore(t)

	products, sections, err := LoadCatalog(context.Background(), s)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if products == nil || sections == nil {
		t.Fatal("LoadCatalog() returned nil slices, want empty")
	}
	if len(products) != 0 || len(sections) != 0 {
		t.Errorf("fresh database not empty: %d products, %d sections", len(products), len(sections))
	}
}

func TestSaveLoadCatalog_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	products := []catalog.Product{
		{ID: "p-1", Name: "Чипсы Lays", SectionNames: []string{"Бакалея"}},
		{ID: "p-2", Name: "Вода", SectionNames: []string{}},
	}
	sections := []catalog.Section{
		{ID: "s-1", Name: "Бакалея", Coords: catalog.Rect{X: 10, Y: 20, W: 100, H: 50}},
	}

	if err := SaveCatalog(ctx, s, products, sections); err != nil {
		t.Fatalf("SaveCatalog() failed: %v", err)
	}

	gotProducts, gotSections, err := LoadCatalog(ctx, s)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if !reflect.DeepEqual(gotProducts, products) {
		t.Errorf("products = %+v, want %+v", gotProducts, products)
	}
	if !reflect.DeepEqual(gotSections, sections) {
		t.Errorf("sections = %+v, want %+v", gotSections, sections)
	}
}

func TestSaveCatalog_PersistedShape(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := SaveCatalog(ctx, s,
		[]catalog.Product{{ID: "p-1", Name: "Кола", SectionNames: []string{"Напитки"}}},
		[]catalog.Section{{ID: "s-1", Name: "Напитки", Coords: catalog.Rect{X: 1, Y: 2, W: 3, H: 4}}},
	)
	if err != nil {
		t.Fatalf("SaveCatalog() failed: %v", err)
	}

	// Shapes are bit-relevant for round-tripping with the original app.
	raw, _, err := s.Get(ctx, ProductsKey)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	want := `[{"id":"p-1","name":"Кола","sectionNames":["Напитки"]}]`
	if raw != want {
		t.Errorf("products JSON = %s, want %s", raw, want)
	}

	raw, _, err = s.Get(ctx, SectionsKey)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	want = `[{"id":"s-1","name":"Напитки","coords":{"x":1,"y":2,"w":3,"h":4}}]`
	if raw != want {
		t.Errorf("sections JSON = %s, want %s", raw, want)
	}
}

func TestLoadCatalog_RejectsMalformedPayload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// sectionNames has the wrong type; schema validation must refuse it.
	if err := s.Set(ctx, ProductsKey, `[{"id":"p-1","name":"Кола","sectionNames":"Напитки"}]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if _, _, err := LoadCatalog(ctx, s); err == nil {
		t.Fatal("LoadCatalog() accepted a malformed products payload")
	}
}

func TestMapImageURI_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := LoadMapImageURI(ctx, s); err != nil || ok {
		t.Fatalf("LoadMapImageURI() on fresh db = ok %v err %v, want absent", ok, err)
	}

	if err := SaveMapImageURI(ctx, s, "file:///maps/store.png"); err != nil {
		t.Fatalf("SaveMapImageURI() failed: %v", err)
	}

	uri, ok, err := LoadMapImageURI(ctx, s)
	if err != nil {
		t.Fatalf("LoadMapImageURI() failed: %v", err)
	}
	if !ok || uri != "file:///maps/store.png" {
		t.Errorf("uri = %q ok = %v, want stored uri", uri, ok)
	}
}

func TestLoadMapImageURI_EmptyValueIsAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, MapImageURIKey, ""); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if _, ok, err := LoadMapImageURI(ctx, s); err != nil || ok {
		t.Errorf("empty stored uri reported as present (ok=%v err=%v)", ok, err)
	}
}
