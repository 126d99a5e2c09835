package sparsefold

import (
	"strings"
	"testing"

	"github.com/nnfold/sparsefold/restriction"
	"github.com/nnfold/sparsefold/thermo"
	"github.com/pmezard/go-difflib/difflib"
)

// assertSameTrace renders a unified diff of two dot-bracket strings on
// mismatch, the same helper style the teacher's io_test.go uses for
// round-tripped file comparisons.
func assertSameTrace(t *testing.T, label, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  1,
	}
	text, _ := difflib.GetUnifiedDiffString(d)
	t.Errorf("%s: structures differ:\n%s", label, text)
}

func newEngine(t *testing.T, seq, restr string, cfg Config) (*Engine, thermo.Sequence) {
	t.Helper()
	s, err := thermo.NewSequence(seq)
	if err != nil {
		t.Fatalf("NewSequence(%q): %v", seq, err)
	}
	var rt *restriction.Table
	if restr == "" {
		rt = restriction.NoRestriction(s.N)
	} else {
		rt, err = restriction.Parse(restr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", restr, err)
		}
	}
	oracle := thermo.NewOracle(thermo.NewDefaultParams(37.0), 2)
	e, err := New(s, rt, oracle, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, s
}

func TestFoldShortSequenceAllDots(t *testing.T) {
	e, _ := newEngine(t, "GCGCGC", "", Config{})
	energy := e.Fold()
	if energy != 0 {
		t.Fatalf("Fold() = %d, want 0 for a sequence too short to pair", energy)
	}
	structure := e.Trace()
	if structure != "......" {
		t.Fatalf("Trace() = %q, want all dots", structure)
	}
}

func TestFoldHairpinCandidate(t *testing.T) {
	e, _ := newEngine(t, "GGGAAAUCCC", "", Config{})
	energy := e.Fold()
	structure := e.Trace()
	if energy >= 0 {
		t.Fatalf("Fold() = %d, want a negative (favorable) energy", energy)
	}
	if !strings.HasPrefix(structure, "(((") || !strings.HasSuffix(structure, ")))") {
		t.Fatalf("Trace() = %q, want a closed three-pair hairpin", structure)
	}
}

func TestRestrictionAllForcedUnpairedYieldsAllDots(t *testing.T) {
	e, _ := newEngine(t, "GGGAAAUCCC", "xxxxxxxxxx", Config{})
	energy := e.Fold()
	if energy != 0 {
		t.Fatalf("Fold() = %d, want 0 under an all-forced-unpaired restriction", energy)
	}
	if got := e.Trace(); strings.ContainsAny(got, "()") {
		t.Fatalf("Trace() = %q, want no pairs under all-forced-unpaired restriction", got)
	}
}

func TestRestrictionForcedPairBrackets(t *testing.T) {
	e, _ := newEngine(t, "GGGAAAUCCC", "(........)", Config{})
	e.Fold()
	got := e.Trace()
	if got[0] != '(' || got[len(got)-1] != ')' {
		t.Fatalf("Trace() = %q, want the forced pair at the ends", got)
	}
}

func TestFoldUnpairableSequenceIsAllDots(t *testing.T) {
	e, _ := newEngine(t, "AAAAAAA", "", Config{})
	energy := e.Fold()
	if energy != 0 {
		t.Fatalf("Fold() = %d, want 0 for a sequence with no possible pair", energy)
	}
	if got := e.Trace(); got != "......." {
		t.Fatalf("Trace() = %q, want all dots", got)
	}
}

func TestFoldMatchesDenseReference(t *testing.T) {
	sequences := []string{
		"GCGCGC",
		"GGGAAAUCCC",
		"GGGGAAAACCCC",
		"GCAAAAGCAAAAGC",
		"AAAAAAA",
	}
	for _, seq := range sequences {
		e, s := newEngine(t, seq, "", Config{})
		sparse := e.Fold()
		oracle := thermo.NewOracle(thermo.NewDefaultParams(37.0), 2)
		dense := DenseFold(s, restriction.NoRestriction(s.N), oracle, e.maxloop)
		if sparse != dense {
			t.Errorf("sequence %q: sparse Fold() = %d, DenseFold() = %d", seq, sparse, dense)
		}
	}
}

func TestArenaSoundAfterFold(t *testing.T) {
	e, _ := newEngine(t, "GGGGAAAACCCCGGGGAAAACCCC", "", Config{})
	e.Fold()
	if !e.ArenaSound() {
		t.Fatalf("ArenaSound() = false after a completed fold")
	}
}

func TestArenaSoundWithoutGC(t *testing.T) {
	e, _ := newEngine(t, "GGGGAAAACCCCGGGGAAAACCCC", "", Config{NoGC: true})
	e.Fold()
	if !e.ArenaSound() {
		t.Fatalf("ArenaSound() = false with GC disabled")
	}
}

func TestResetReproducesSameEnergy(t *testing.T) {
	seq := "GGGAAAUCCC"
	e, s := newEngine(t, seq, "", Config{})
	first := e.Fold()
	firstTrace := e.Trace()
	if err := e.Reset(restriction.NoRestriction(s.N)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	second := e.Fold()
	secondTrace := e.Trace()
	if first != second {
		t.Fatalf("Fold() after Reset = %d, want %d (idempotent)", second, first)
	}
	assertSameTrace(t, "Reset idempotence", firstTrace, secondTrace)
}

func TestTraceStructureIsWellNested(t *testing.T) {
	e, _ := newEngine(t, "GGGGAAAACCCCGGGGAAAACCCC", "", Config{})
	e.Fold()
	structure := e.Trace()
	depth := 0
	for _, c := range structure {
		switch c {
		case '(', '{':
			depth++
		case ')', '}':
			depth--
			if depth < 0 {
				t.Fatalf("Trace() = %q has an unmatched closing bracket", structure)
			}
		}
	}
	if depth != 0 {
		t.Fatalf("Trace() = %q has %d unmatched opening brackets", structure, depth)
	}
}

func TestNewRejectsLengthMismatch(t *testing.T) {
	s, err := thermo.NewSequence("GGGAAACCC")
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	rt, err := restriction.Parse("...")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	oracle := thermo.NewOracle(thermo.NewDefaultParams(37.0), 2)
	_, err = New(s, rt, oracle, Config{})
	if _, ok := err.(*LengthMismatch); !ok {
		t.Fatalf("New() error = %v, want *LengthMismatch", err)
	}
}

func TestNewRejectsBadDangleMode(t *testing.T) {
	s, err := thermo.NewSequence("GGGAAACCC")
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	oracle := thermo.NewOracle(thermo.NewDefaultParams(37.0), 3)
	_, err = New(s, restriction.NoRestriction(s.N), oracle, Config{})
	if _, ok := err.(*ArgParseError); !ok {
		t.Fatalf("New() error = %v, want *ArgParseError", err)
	}
}
