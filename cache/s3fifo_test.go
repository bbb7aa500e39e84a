package cache

import "testing"

// TestS3FifoOneHitProtectionS4 implements spec scenario S4: S3Fifo(10).
// Insert 9 distinct new keys then the 10th; the 9 originals must still be
// present, and a subsequent re-query of any of them is a hit.
func TestS3FifoOneHitProtectionS4(t *testing.T) {
	c := NewS3Fifo(10)
	keys := []string{"k0", "k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8"}
	for _, k := range keys {
		c.Put(k, partial(k))
	}
	c.Put("k9", partial("k9"))

	for _, k := range keys {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %q to still be present after inserting 10th key", k)
		}
	}
}

func TestS3FifoOverwriteInPlace(t *testing.T) {
	c := NewS3Fifo(4)
	c.Put("a", partial("a"))
	c.Put("a", partial("a2"))
	v, ok := c.Get("a")
	if !ok || v.String != "a2" {
		t.Errorf("expected overwritten value, got %+v ok=%v", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len: got %d, want 1", c.Len())
	}
}

func TestS3FifoBoundedSize(t *testing.T) {
	c := NewS3Fifo(5)
	for i := 0; i < 50; i++ {
		c.Put(string(rune('a'+i%26))+string(rune(i)), partial("x"))
	}
	if c.Len() > 5 {
		t.Errorf("Len: got %d, want <= 5", c.Len())
	}
}

func TestS3FifoEvictsEventually(t *testing.T) {
	c := NewS3Fifo(2)
	c.Put("a", partial("a"))
	c.Put("b", partial("b"))
	c.Put("c", partial("c"))
	c.Put("d", partial("d"))

	if c.Len() > 2 {
		t.Errorf("Len: got %d, want <= 2", c.Len())
	}
	if _, ok := c.Get("d"); !ok {
		t.Error("expected most recently inserted key to be present")
	}
}
