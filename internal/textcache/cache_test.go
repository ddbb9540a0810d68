package textcache

import (
	"errors"
	"image"
	"strconv"
	"sync"
	"testing"
)

func key(s string) Key {
	return Key{Text: s, Scale: 0.5, Thickness: 1}
}

func metrics(w int) Metrics {
	return Metrics{Size: image.Pt(w, 10), Baseline: 2}
}

func TestNew(t *testing.T) {
	c := New(100)
	if c.Stats().Capacity != 100 || c.Len() != 0 {
		t.Errorf("New(100) stats = %+v", c.Stats())
	}
	if got := New(0).Stats().Capacity; got != DefaultCapacity {
		t.Errorf("New(0) capacity = %d, want %d", got, DefaultCapacity)
	}
}

func TestGetSet(t *testing.T) {
	c := New(10)
	c.Set(key("a"), metrics(5))

	got, ok := c.Get(key("a"))
	if !ok || got != metrics(5) {
		t.Errorf("Get(a) = %+v, %v", got, ok)
	}
	if _, ok := c.Get(key("b")); ok {
		t.Error("Get(b) found a missing key")
	}
	if _, ok := c.Get(Key{Text: "a", Scale: 0.5, Thickness: 2}); ok {
		t.Error("thickness is not part of the key")
	}

	c.Set(key("a"), metrics(7))
	if got, _ := c.Get(key("a")); got != metrics(7) {
		t.Errorf("Get(a) after update = %+v", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestGetOrCompute(t *testing.T) {
	c := New(10)
	calls := 0
	compute := func() (Metrics, error) {
		calls++
		return metrics(calls), nil
	}
	first, err := c.GetOrCompute(key("a"), compute)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := c.GetOrCompute(key("a"), compute)
	if calls != 1 || first != second {
		t.Errorf("compute called %d times; results %+v, %+v", calls, first, second)
	}
}

func TestGetOrComputeErrorNotCached(t *testing.T) {
	c := New(10)
	errBoom := errors.New("boom")
	if _, err := c.GetOrCompute(key("a"), func() (Metrics, error) { return Metrics{}, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed computation was cached")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(3)
	c.Set(key("a"), metrics(1))
	c.Set(key("b"), metrics(2))
	c.Set(key("c"), metrics(3))
	c.Get(key("a"))
	c.Set(key("d"), metrics(4))

	if _, ok := c.Get(key("b")); ok {
		t.Error("b survived although it was least recently used")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key(k)); !ok {
			t.Errorf("%s was evicted", k)
		}
	}
	if s := c.Stats(); s.Len != 3 || s.Evictions != 1 {
		t.Errorf("stats = %+v, want len 3 and one eviction", s)
	}
}

func TestClear(t *testing.T) {
	c := New(3)
	c.Set(key("a"), metrics(1))
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Set(key("b"), metrics(2))
	if _, ok := c.Get(key("b")); !ok {
		t.Error("cache unusable after Clear")
	}
}

func TestHitRate(t *testing.T) {
	c := New(3)
	if r := c.Stats().HitRate(); r != 0 {
		t.Errorf("HitRate() on fresh cache = %v", r)
	}
	c.Set(key("a"), metrics(1))
	c.Get(key("a"))
	c.Get(key("a"))
	c.Get(key("a"))
	c.Get(key("z"))
	if r := c.Stats().HitRate(); r != 0.75 {
		t.Errorf("HitRate() = %v, want 0.75", r)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := key(strconv.Itoa((g + i) % 32))
				_, _ = c.GetOrCompute(k, func() (Metrics, error) { return metrics(i), nil })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
