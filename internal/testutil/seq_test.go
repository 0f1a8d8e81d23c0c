package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDSource_Ordering(t *testing.T) {
	src := NewSequentialIDSource("id")

	assert.Equal(t, "id-1", src.NewID())
	assert.Equal(t, "id-2", src.NewID())
	assert.Equal(t, int64(2), src.Count())
}

func TestSequentialIDSource_ConcurrentUse(t *testing.T) {
	src := NewSequentialIDSource("id")

	var wg sync.WaitGroup
	seen := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- src.NewID()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[string]struct{})
	for id := range seen {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 100, "ids must not collide under concurrency")
	assert.Equal(t, int64(100), src.Count())
}
