package reconcile

import (
	"sync"
	"testing"
)

func TestAllocatorMonotonic(t *testing.T) {
	alloc := NewAllocator()
	prev := alloc.Next()
	if prev != 1 {
		t.Errorf("first id = %d, want 1 (0 is the root)", prev)
	}
	for i := 0; i < 100; i++ {
		next := alloc.Next()
		if next <= prev {
			t.Fatalf("id %d issued after %d", next, prev)
		}
		prev = next
	}
}

func TestAllocatorResetReproducible(t *testing.T) {
	alloc := NewAllocator()
	alloc.Next()
	alloc.Next()
	alloc.Reset()
	if got := alloc.Next(); got != 1 {
		t.Errorf("first id after Reset = %d, want 1", got)
	}
}

func TestAllocatorsIndependent(t *testing.T) {
	a := NewAllocator()
	b := NewAllocator()
	a.Next()
	a.Next()
	if got := b.Next(); got != 1 {
		t.Errorf("second allocator's first id = %d, want 1", got)
	}
}

func TestAllocatorConcurrentUnique(t *testing.T) {
	alloc := NewAllocator()
	const goroutines = 8
	const perG = 1000

	ids := make([][]uint64, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids[g] = make([]uint64, 0, perG)
			for i := 0; i < perG; i++ {
				ids[g] = append(ids[g], uint64(alloc.Next()))
			}
		}(g)
	}
	wg.Wait()

	seen := make(map[uint64]struct{}, goroutines*perG)
	for _, batch := range ids {
		for _, id := range batch {
			if _, dup := seen[id]; dup {
				t.Fatalf("id %d issued twice", id)
			}
			seen[id] = struct{}{}
		}
	}
}
