package thermo

import (
	"fmt"
	"testing"
)

func ExampleNewSequence() {
	s, err := NewSequence("GGGAAAUCCC")
	if err != nil {
		panic(err)
	}
	fmt.Println(s.N, s.S[1], s.S1[10])
	// Output:
	// 10 3 2
}

func TestNewSequenceRejectsNonACGU(t *testing.T) {
	_, err := NewSequence("GGGNCCC")
	if err == nil {
		t.Fatal("expected an OracleError for a non-ACGU base")
	}
	var oracleErr *OracleError
	if !asOracleError(err, &oracleErr) {
		t.Fatalf("expected *OracleError, got %T: %v", err, err)
	}
	if oracleErr.Pos != 3 {
		t.Fatalf("expected error position 3, got %d", oracleErr.Pos)
	}
}

func asOracleError(err error, target **OracleError) bool {
	if oe, ok := err.(*OracleError); ok {
		*target = oe
		return true
	}
	return false
}

func TestHairpinRejectsShortLoop(t *testing.T) {
	s, err := NewSequence("GGGAAAUCCC")
	if err != nil {
		t.Fatal(err)
	}
	o := NewOracle(NewDefaultParams(37.0), 2)
	if e := o.Hairpin(6, 7, s); e != Inf {
		t.Fatalf("expected Inf for a zero-length loop, got %d", e)
	}
	if e := o.Hairpin(1, 10, s); e == Inf {
		t.Fatalf("expected a finite hairpin energy for a valid loop, got Inf")
	}
}

func TestHairpinRejectsNonCanonicalPair(t *testing.T) {
	s, err := NewSequence("AAAAAAA")
	if err != nil {
		t.Fatal(err)
	}
	o := NewOracle(NewDefaultParams(37.0), 2)
	if e := o.Hairpin(1, 7, s); e != Inf {
		t.Fatalf("A-A cannot pair, expected Inf, got %d", e)
	}
}

func TestInternalLoopStackIsSymmetric(t *testing.T) {
	s, err := NewSequence("GGGGCCCC")
	if err != nil {
		t.Fatal(err)
	}
	o := NewOracle(NewDefaultParams(37.0), 2)
	outer := o.InternalLoop(1, 8, 2, 7, s)
	inner := o.InternalLoop(2, 7, 3, 6, s)
	if outer == Inf || inner == Inf {
		t.Fatalf("expected finite stacking energies, got outer=%d inner=%d", outer, inner)
	}
}

func TestRType(t *testing.T) {
	cases := map[BasePairType]BasePairType{CG: GC, GC: CG, GU: UG, UG: GU, AU: UA, UA: AU}
	for in, want := range cases {
		if got := RType(in); got != want {
			t.Errorf("RType(%d) = %d, want %d", in, got, want)
		}
	}
}
