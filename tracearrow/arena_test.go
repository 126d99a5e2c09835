package tracearrow

import "testing"

func TestRegisterAndGet(t *testing.T) {
	a := New()
	a.Register(5, 20, 7, 18, -42)
	arrow, ok := a.Get(5, 20)
	if !ok {
		t.Fatal("expected arrow to exist at (5,20)")
	}
	if arrow.K != 7 || arrow.L != 18 || arrow.TargetEnergy != -42 {
		t.Fatalf("unexpected arrow contents: %+v", arrow)
	}
}

func TestGCRowDropsUnreferencedArrows(t *testing.T) {
	a := New()
	a.Register(5, 20, 7, 18, -42)
	if !a.Exists(5, 20) {
		t.Fatal("expected arrow to exist before GC")
	}
	a.GCRow(5)
	if a.Exists(5, 20) {
		t.Fatal("expected unreferenced arrow to be collected")
	}
}

func TestGCRowKeepsReferencedArrows(t *testing.T) {
	a := New()
	a.Register(5, 20, 7, 18, -42)
	a.IncSourceRef(5, 20)
	a.GCRow(5)
	if !a.Exists(5, 20) {
		t.Fatal("expected referenced arrow to survive GC")
	}
}

func TestGCRowCascadesRefcountDecrement(t *testing.T) {
	a := New()
	a.Register(7, 18, 9, 15, -10) // target of the row-5 arrow below
	a.Register(5, 20, 7, 18, -42)
	a.IncSourceRef(7, 18) // pin (7,18) because (5,20) points at it
	a.GCRow(5)            // drops (5,20), should decrement (7,18)'s refcount
	if a.Exists(5, 20) {
		t.Fatal("expected (5,20) to be collected")
	}
	arrow, ok := a.Get(7, 18)
	if !ok {
		t.Fatal("expected (7,18) to still exist")
	}
	if arrow.RefCount != 0 {
		t.Fatalf("expected refcount to drop to 0, got %d", arrow.RefCount)
	}
	a.GCRow(7)
	if a.Exists(7, 18) {
		t.Fatal("expected (7,18) to be collected once its refcount reached 0")
	}
}

func TestSoundReportsUnreferencedArrowsInsideWindow(t *testing.T) {
	a := New()
	a.Register(5, 20, 7, 18, -42)
	if a.Sound(30, 10) {
		t.Fatal("expected an unreferenced arrow inside the live window to be unsound")
	}
	a.GCRow(5)
	if !a.Sound(30, 10) {
		t.Fatal("expected the arena to be sound after GC")
	}
}

func TestCompactifyRemovesEmptyRows(t *testing.T) {
	a := New()
	a.Register(5, 20, 7, 18, -42)
	a.GCRow(5)
	a.Compactify()
	if _, ok := a.rows[5]; ok {
		t.Fatal("expected row 5 to be dropped after compactify")
	}
}
