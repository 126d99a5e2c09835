package pseudoknot

import (
	"github.com/nnfold/sparsefold/restriction"
	"github.com/nnfold/sparsefold/sparsefold"
	"github.com/nnfold/sparsefold/thermo"
)

// Result is the combined outcome of the two-plane overlay.
type Result struct {
	Structure string
	Energy    int
	Energy1   int
	Energy2   int
}

// AltRestrictions builds alt1 and alt2 from the user-supplied restriction
// string r (spec.md §4.8): alt1 turns every free "." into a forced-unpaired
// "x"; alt2 turns every forced-pair "(" or ")" into "x", leaving "." and
// any x/X already present untouched.
func AltRestrictions(r string) (alt1, alt2 string) {
	b1 := make([]byte, len(r))
	b2 := make([]byte, len(r))
	for i := 0; i < len(r); i++ {
		c := r[i]
		switch c {
		case '.':
			b1[i] = 'x'
			b2[i] = '.'
		case '(', ')':
			b1[i] = c
			b2[i] = 'x'
		default:
			b1[i] = c
			b2[i] = c
		}
	}
	return string(b1), string(b2)
}

// Fold runs the DP engine twice on alt1 and alt2 (derived from restriction)
// and overlays the results. The second plane's "()" are rewritten to "[]"
// except at positions the original restriction forced to pair, which keep
// "()". If the second fold is entirely unpaired, its contribution is
// skipped and the first plane's structure and energy are returned alone —
// the combined energy is unaffected either way, since an all-dots fold has
// energy 0, but the short-circuit avoids an unnecessary overlay pass.
func Fold(seq thermo.Sequence, restrictionStr string, oracle *thermo.Oracle, cfg sparsefold.Config) (Result, error) {
	original, err := restriction.Parse(restrictionStr)
	if err != nil {
		return Result{}, err
	}

	alt1Str, alt2Str := AltRestrictions(restrictionStr)
	alt1, err := restriction.Parse(alt1Str)
	if err != nil {
		return Result{}, err
	}
	alt2, err := restriction.Parse(alt2Str)
	if err != nil {
		return Result{}, err
	}

	e1, err := sparsefold.New(seq, alt1, oracle, cfg)
	if err != nil {
		return Result{}, err
	}
	energy1 := e1.Fold()
	structure1 := e1.Trace()

	e2, err := sparsefold.New(seq, alt2, oracle, cfg)
	if err != nil {
		return Result{}, err
	}
	energy2 := e2.Fold()
	structure2 := e2.Trace()

	if isAllDots(structure2) {
		return Result{Structure: structure1, Energy: energy1, Energy1: energy1, Energy2: 0}, nil
	}

	combined := overlay(structure1, structure2, original)
	return Result{
		Structure: combined,
		Energy:    energy1 + energy2,
		Energy1:   energy1,
		Energy2:   energy2,
	}, nil
}

func isAllDots(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '.' {
			return false
		}
	}
	return true
}

// overlay merges s1 (the primary plane, kept as "()") with s2 (the second
// plane, rewritten to "[]"), except positions original forces to pair,
// which always render using s1's "()" regardless of what s2 produced there.
func overlay(s1, s2 string, original *restriction.Table) string {
	out := make([]byte, len(s1))
	for i := range out {
		pos := i + 1
		if _, forced := original.ForcedPair(pos); forced {
			out[i] = s1[i]
			continue
		}
		switch s2[i] {
		case '(':
			out[i] = '['
		case ')':
			out[i] = ']'
		default:
			out[i] = s1[i]
		}
	}
	return string(out)
}
