package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestLRU_GetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%v, %v), want (1, true)", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	// Overwriting keeps a single entry.
	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after overwrite = %v, want 10", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len after overwrite = %d, want 2", c.Len())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)

	// Touch 1 so 2 becomes the oldest.
	c.Get(1)
	c.Set(4, 4)

	if _, ok := c.Get(2); ok {
		t.Error("least recently used entry survived eviction")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d was evicted, want it kept", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestLRU_CapacityBound(t *testing.T) {
	c := New[int, int](8)
	for i := 0; i < 100; i++ {
		c.Set(i, i)
	}
	if c.Len() != 8 {
		t.Errorf("Len = %d, want capacity 8", c.Len())
	}
	// The newest entries survive.
	for i := 92; i < 100; i++ {
		if _, ok := c.Get(i); !ok {
			t.Errorf("recent entry %d missing", i)
		}
	}
}

func TestLRU_GetOrCreate(t *testing.T) {
	c := New[string, int](4)

	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrCreate("k", create)
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		if v != 42 {
			t.Errorf("GetOrCreate = %v, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestLRU_GetOrCreate_ErrorNotCached(t *testing.T) {
	c := New[string, int](4)
	boom := errors.New("boom")

	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed create left a poisoned entry")
	}

	// A later successful create works.
	v, err := c.GetOrCreate("k", func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("GetOrCreate after failure = (%v, %v)", v, err)
	}
}

func TestLRU_DeleteClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still present")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestLRU_Stats(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats = %+v, want 2 hits, 1 miss", s)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %v", s.HitRate)
	}
	if s.Capacity != 4 || s.Len != 1 {
		t.Errorf("Stats = %+v", s)
	}

	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 || s.Evictions != 0 {
		t.Errorf("Stats after reset = %+v", s)
	}
}

func TestLRU_DefaultCapacity(t *testing.T) {
	if got := New[int, int](0).Capacity(); got != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", got, DefaultCapacity)
	}
	if got := New[int, int](-5).Capacity(); got != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", got, DefaultCapacity)
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := (g*500 + i) % 100
				v, err := c.GetOrCreate(key, func() (int, error) { return key * 2, nil })
				if err != nil {
					t.Errorf("GetOrCreate: %v", err)
					return
				}
				if v != key*2 {
					t.Errorf("GetOrCreate(%d) = %d", key, v)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}

func TestLRU_EvictionOrderFull(t *testing.T) {
	c := New[string, string](2)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3") // evicts a
	c.Get("b")      // b most recent
	c.Set("d", "4") // evicts c

	want := map[string]bool{"a": false, "b": true, "c": false, "d": true}
	for k, present := range want {
		_, ok := c.Get(k)
		if ok != present {
			t.Errorf("entry %q present = %v, want %v", k, ok, present)
		}
	}
}
