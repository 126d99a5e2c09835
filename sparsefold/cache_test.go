package sparsefold

import "testing"

func TestFoldCacheRoundTrip(t *testing.T) {
	c := NewFoldCache()
	key := Key("GGGAAAUCCC", "", Config{Dangles: 2})
	if _, ok := c.Get(key); ok {
		t.Fatalf("Get on empty cache returned a hit")
	}
	c.Put(key, Result{Energy: -120, Structure: "(((...)))"})
	got, ok := c.Get(key)
	if !ok || got.Energy != -120 || got.Structure != "(((...)))" {
		t.Fatalf("Get(%q) = %+v, %v, want the stored result", key, got, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestKeyDiffersByRestrictionAndConfig(t *testing.T) {
	base := Key("GGGAAAUCCC", "", Config{Dangles: 2})
	restricted := Key("GGGAAAUCCC", "(........)", Config{Dangles: 2})
	diffDangles := Key("GGGAAAUCCC", "", Config{Dangles: 1})
	if base == restricted {
		t.Fatalf("Key ignored the restriction string")
	}
	if base == diffDangles {
		t.Fatalf("Key ignored the config")
	}
}
