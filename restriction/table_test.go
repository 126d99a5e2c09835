package restriction

import "testing"

func TestParseNoRestriction(t *testing.T) {
	tbl, err := Parse("..........")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= tbl.N; i++ {
		if tbl.PTable[i] != -2 {
			t.Fatalf("position %d: want free (-2), got %d", i, tbl.PTable[i])
		}
	}
}

func TestParseForcedPair(t *testing.T) {
	tbl, err := Parse("(........)")
	if err != nil {
		t.Fatal(err)
	}
	j, forced := tbl.ForcedPair(1)
	if !forced || j != 10 {
		t.Fatalf("expected position 1 forced to pair with 10, got (%d, %v)", j, forced)
	}
	j2, forced2 := tbl.ForcedPair(10)
	if !forced2 || j2 != 1 {
		t.Fatalf("expected position 10 forced to pair with 1, got (%d, %v)", j2, forced2)
	}
}

func TestParseForcedUnpaired(t *testing.T) {
	tbl, err := Parse("xxxxxxxxxx")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= tbl.N; i++ {
		if !tbl.ForcedUnpaired(i) {
			t.Fatalf("position %d: expected forced unpaired", i)
		}
	}
}

func TestParseUnbalancedErrors(t *testing.T) {
	if _, err := Parse("(((..."); err == nil {
		t.Fatal("expected a RestrictionError for an unmatched opening bracket")
	}
	if _, err := Parse("...)))"); err == nil {
		t.Fatal("expected a RestrictionError for an unmatched closing bracket")
	}
	if _, err := Parse("(..]"); err == nil {
		t.Fatal("expected a RestrictionError for a mismatched bracket shape")
	}
}

func TestParseBracketShapesEquivalent(t *testing.T) {
	tbl, err := Parse("[....]")
	if err != nil {
		t.Fatal(err)
	}
	j, forced := tbl.ForcedPair(1)
	if !forced || j != 6 {
		t.Fatalf("expected [ ] to behave like ( ), got (%d, %v)", j, forced)
	}
}

func TestEvaluateAllowsUnrestrictedRegion(t *testing.T) {
	tbl, err := Parse("..........")
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.Evaluate(1, 10, false) {
		t.Fatal("expected evaluate to allow an unrestricted span")
	}
}

func TestEvaluateRejectsStraddlingRestrictedRegions(t *testing.T) {
	tbl, err := Parse("(...)(...)")
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Evaluate(2, 7, false) {
		t.Fatal("expected evaluate to reject a pair straddling two disjoint forced pairs")
	}
}

func TestEvaluateMultiloopRelaxation(t *testing.T) {
	tbl, err := Parse("(........)")
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.Evaluate(1, 10, true) {
		t.Fatal("expected multiloop mode to allow the enclosing forced pair itself")
	}

	nested, err := Parse("((....))")
	if err != nil {
		t.Fatal(err)
	}
	if nested.Evaluate(1, 5, false) {
		t.Fatal("expected the nesting-depth mismatch to reject (1,5) outside multiloop mode")
	}
	if !nested.Evaluate(1, 5, true) {
		t.Fatal("expected multiloop mode to allow (1,5), enclosed by the forced pair at 1")
	}
}
