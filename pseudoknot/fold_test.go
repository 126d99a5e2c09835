package pseudoknot

import (
	"strings"
	"testing"

	"github.com/nnfold/sparsefold/sparsefold"
	"github.com/nnfold/sparsefold/thermo"
)

func TestAltRestrictionsPartitionFreeAndForced(t *testing.T) {
	alt1, alt2 := AltRestrictions("(((......)))")
	if alt1 != "(((xxxxxx)))" {
		t.Fatalf("alt1 = %q, want free positions turned to x", alt1)
	}
	if alt2 != "xxx......xxx" {
		t.Fatalf("alt2 = %q, want forced-pair positions turned to x", alt2)
	}
}

func TestFoldKeepsForcedPairAndSumsEnergies(t *testing.T) {
	seq, err := thermo.NewSequence("GGGAAACCCUUU")
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	oracle := thermo.NewOracle(thermo.NewDefaultParams(37.0), 2)
	result, err := Fold(seq, "(((......)))", oracle, sparsefold.Config{})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if result.Structure[0] != '(' || result.Structure[len(result.Structure)-1] != ')' {
		t.Fatalf("Structure = %q, want the forced pair preserved as ()", result.Structure)
	}
	if result.Energy != result.Energy1+result.Energy2 {
		t.Fatalf("Energy = %d, want Energy1+Energy2 = %d", result.Energy, result.Energy1+result.Energy2)
	}
}

func TestFoldShortCircuitsOnAllDotsSecondPlane(t *testing.T) {
	seq, err := thermo.NewSequence("GGGAAACCC")
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	oracle := thermo.NewOracle(thermo.NewDefaultParams(37.0), 2)
	result, err := Fold(seq, "xxxxxxxxx", oracle, sparsefold.Config{})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if result.Energy2 != 0 {
		t.Fatalf("Energy2 = %d, want 0 on the all-forced-unpaired short circuit", result.Energy2)
	}
	if strings.ContainsAny(result.Structure, "[]") {
		t.Fatalf("Structure = %q, want no second-plane brackets", result.Structure)
	}
}
