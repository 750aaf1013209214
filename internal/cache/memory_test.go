package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	c := NewMemory[string, int](10)

	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache returned a value")
	}

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if v, ok := c.Get("a"); !ok || v != 3 {
		t.Errorf("Get(a) = %d, %v, want 3, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewMemory[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}

	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.Set(4, 4)

	// Over the limit: shrink to 3 entries, dropping 1 and 2.
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	for _, k := range []int{1, 2} {
		if _, ok := c.Get(k); ok {
			t.Errorf("key %d survived eviction", k)
		}
	}
	for _, k := range []int{0, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d was evicted", k)
		}
	}
	if got := c.Stats().Evictions; got != 2 {
		t.Errorf("Evictions = %d, want 2", got)
	}
}

func TestMemoryUnlimited(t *testing.T) {
	c := NewMemory[int, int](0)
	for i := range 1000 {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len = %d, want 1000", c.Len())
	}
}

func TestMemoryDeleteClear(t *testing.T) {
	c := NewMemory[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get after Clear = %d, %v", v, ok)
	}
}

func TestMemoryStats(t *testing.T) {
	c := NewMemory[string, int](8)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %v, want 2/3", s.HitRate)
	}
	if s.Capacity != 8 || s.Len != 1 {
		t.Errorf("Capacity/Len = %d/%d, want 8/1", s.Capacity, s.Len)
	}
}

func TestMemoryConcurrent(t *testing.T) {
	c := NewMemory[string, int](50)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				key := strconv.Itoa((g*31 + i) % 120)
				c.Set(key, i)
				c.Get(key)
				if i%7 == 0 {
					c.Delete(key)
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len = %d, want at most the soft limit", c.Len())
	}
}
