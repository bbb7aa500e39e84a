package cache

import (
	"testing"

	"github.com/fernwood-systems/uaclassify/domain"
)

func partial(s string) domain.PartialResult {
	return domain.PartialResult{Domains: domain.UserAgent, String: s}
}

// TestLRUEvictionOrderS3 implements spec scenario S3: LRU(2), insert "a",
// "b"; get "a"; put "c". Cache contents must be {"a","c"} (b evicted).
func TestLRUEvictionOrderS3(t *testing.T) {
	c := NewLRU(2)
	c.Put("a", partial("a"))
	c.Put("b", partial("b"))
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a to be present")
	}
	c.Put("c", partial("c"))

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive")
	}
	if v, ok := c.Get("c"); !ok || v.String != "c" {
		t.Error("expected c to be present")
	}
}

func TestLRUOverwriteDoesNotEvict(t *testing.T) {
	c := NewLRU(2)
	c.Put("a", partial("a"))
	c.Put("b", partial("b"))
	c.Put("a", partial("a2"))

	if c.Len() != 2 {
		t.Fatalf("expected overwrite not to change size, got %d", c.Len())
	}
	v, ok := c.Get("a")
	if !ok || v.String != "a2" {
		t.Errorf("expected overwritten value a2, got %+v", v)
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected b to remain, overwrite must not evict")
	}
}

func TestLRUBoundedSize(t *testing.T) {
	c := NewLRU(3)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		c.Put(k, partial(k))
	}
	if c.Len() != 3 {
		t.Errorf("Len: got %d, want 3", c.Len())
	}
}

func TestLRUMissOnAbsentKey(t *testing.T) {
	c := NewLRU(2)
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss")
	}
}
