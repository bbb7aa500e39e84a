package cache

import "testing"

func TestLocalHandleRoundTrips(t *testing.T) {
	l := NewLocal(func() Cache { return NewLRU(4) })
	h := l.Handle()
	h.Put("a", partial("a"))
	v, ok := h.Get("a")
	if !ok || v.String != "a" {
		t.Errorf("expected round trip through the same handle to hit, got %+v ok=%v", v, ok)
	}
}

func TestLocalHandlesAreIndependent(t *testing.T) {
	l := NewLocal(func() Cache { return NewLRU(4) })
	first := l.Handle()
	second := l.Handle()

	first.Put("a", partial("a"))
	if _, ok := second.Get("a"); ok {
		t.Error("expected a second Handle to share nothing with the first")
	}
}

func TestLocalFactoryInvokedLazily(t *testing.T) {
	calls := 0
	l := NewLocal(func() Cache {
		calls++
		return NewLRU(2)
	})
	if calls != 0 {
		t.Fatalf("expected factory not to run before first use, got %d calls", calls)
	}
	l.Handle()
	if calls != 1 {
		t.Fatalf("expected factory to have run exactly once, got %d calls", calls)
	}
}
