package tracearrow

// Arrow is a single trace arrow (i,j) -> (k,l) carrying the energy of the
// interior-loop decomposition it stands in for.
type Arrow struct {
	K, L          int
	TargetEnergy  int
	RefCount      int
}

// Arena stores arrows row-indexed by i (the closing pair's 5' end) so that
// GCRow can drop an entire row's worth of unreferenced arrows in one pass,
// matching spec.md §4.3's gc_row(r) contract.
type Arena struct {
	rows map[int]map[int]*Arrow

	registered int
	avoided    int
	gcd        int
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{rows: make(map[int]map[int]*Arrow)}
}

// Register inserts an unreferenced arrow (i,j) -> (k,l,e). O(1) amortized.
func (a *Arena) Register(i, j, k, l, e int) {
	row, ok := a.rows[i]
	if !ok {
		row = make(map[int]*Arrow)
		a.rows[i] = row
	}
	row[j] = &Arrow{K: k, L: l, TargetEnergy: e}
	a.registered++
}

// Avoid bumps the "avoided" statistics counter: called when an interior
// loop's minimizing (k,l) is itself a candidate, so no arrow is needed
// because traceback can re-derive it by scanning CL[l].
func (a *Arena) Avoid() {
	a.avoided++
}

// IncSourceRef increments the refcount at (i,j), pinning it while its
// source remains a registered candidate. Must be called exactly once per
// candidate registered at (i,j) that owns an arrow; calling it when no
// arrow exists at (i,j) is a no-op (the candidate simply has none to pin).
func (a *Arena) IncSourceRef(i, j int) {
	if arrow, ok := a.arrowAt(i, j); ok {
		arrow.RefCount++
	}
}

// Exists reports whether an arrow is registered at (i,j).
func (a *Arena) Exists(i, j int) bool {
	_, ok := a.arrowAt(i, j)
	return ok
}

// Get returns the arrow registered at (i,j), if any.
func (a *Arena) Get(i, j int) (Arrow, bool) {
	arrow, ok := a.arrowAt(i, j)
	if !ok {
		return Arrow{}, false
	}
	return *arrow, true
}

func (a *Arena) arrowAt(i, j int) (*Arrow, bool) {
	row, ok := a.rows[i]
	if !ok {
		return nil, false
	}
	arrow, ok := row[j]
	return arrow, ok
}

// GCRow removes every arrow on row r whose refcount is 0, decrementing the
// refcount of each removed arrow's target if that target itself has an
// arrow. Cascading removals are not required in the same call: if row k
// (a target row) later becomes all-zero-refcount, it is swept when GCRow(k)
// runs, per spec.md §4.3.
func (a *Arena) GCRow(r int) {
	row, ok := a.rows[r]
	if !ok {
		return
	}
	for j, arrow := range row {
		if arrow.RefCount > 0 {
			continue
		}
		delete(row, j)
		a.gcd++
		if target, ok := a.arrowAt(arrow.K, arrow.L); ok {
			target.RefCount--
		}
	}
	if len(row) == 0 {
		delete(a.rows, r)
	}
}

// Compactify reclaims empty rows left behind by GCRow. Go's map-based
// storage has no fragmentation to defragment in the C++ sense; this plays
// the same role spec.md §4.3 assigns it by dropping any row map that GCRow
// emptied but didn't itself delete (e.g. after a bulk removal sequence).
func (a *Arena) Compactify() {
	for r, row := range a.rows {
		if len(row) == 0 {
			delete(a.rows, r)
		}
	}
}

// Size returns the number of live arrows in the arena, used by both the
// --verbose counters and the arena-soundness property test (spec.md §8.4).
func (a *Arena) Size() int {
	n := 0
	for _, row := range a.rows {
		n += len(row)
	}
	return n
}

// Stats reports the running counters spec.md §6 requires --verbose to
// print: total arrows ever registered, how many interior-loop
// decompositions were "avoided" because their target was already a
// candidate, how many arrows have been garbage collected, and the final
// live arena size.
type Stats struct {
	Registered int
	Avoided    int
	GCd        int
	FinalSize  int
}

// StatsSnapshot returns the arena's running counters.
func (a *Arena) StatsSnapshot() Stats {
	return Stats{Registered: a.registered, Avoided: a.avoided, GCd: a.gcd, FinalSize: a.Size()}
}

// Sound reports whether every live arrow either has a positive refcount or
// lies on a row beyond n-maxloop-1, the arena-soundness property from
// spec.md §8.4.
func (a *Arena) Sound(n, maxloop int) bool {
	boundary := n - maxloop - 1
	for r, row := range a.rows {
		for _, arrow := range row {
			if arrow.RefCount <= 0 && r <= boundary {
				return false
			}
		}
	}
	return true
}
