package thermo

// Oracle is the C1 energy oracle spec.md §4.1 describes: a pure,
// side-effect-free set of functions of integer arguments. The DP engine
// holds one Oracle per fold and never mutates it, so a single Oracle can
// be shared across concurrent folds (e.g. the two pseudoknot planes).
type Oracle struct {
	Params  *Params
	Dangles int // 1 or 2, see spec.md §9's dangles=3 Open Question
}

// NewOracle builds an Oracle from params at the given dangle mode. dangles
// must be 1 or 2; sparsefold.New rejects an Oracle with any other mode, so
// NewOracle does not itself return an error.
func NewOracle(params *Params, dangles int) *Oracle {
	return &Oracle{Params: params, Dangles: dangles}
}

const turn = 3 // TURN in spec.md §3

// Turn is the minimum unpaired span inside a hairpin (pairs with
// j-i <= Turn are forbidden), spec.md's T.
func Turn() int { return turn }

// Hairpin returns the energy of the hairpin loop closed by (i,j), 1-indexed
// positions into s. Returns Inf if (i,j) is not a canonical pair or the loop
// is shorter than Turn.
func (o *Oracle) Hairpin(i, j int, s Sequence) int {
	pt := s.PairType(i, j)
	if pt == NoPair {
		return Inf
	}
	size := j - i - 1
	if size < turn {
		return Inf
	}
	p := o.Params
	e := p.ExtrapolateLoop(p.HairpinLoop, size)
	switch size {
	case 3:
		if bonus, ok := p.TriLoop[s.Raw[i-1:j]]; ok {
			e += bonus
		}
		if pt > 2 {
			e += p.TerminalAUPenalty
		}
	case 4:
		mm5, mm3 := s.S1[i+1], s.S1[j-1]
		e += p.MismatchHairpinLoop[pt][mm5][mm3]
		if bonus, ok := p.TetraLoop[s.Raw[i-1:j]]; ok {
			e += bonus
		}
	case 6:
		mm5, mm3 := s.S1[i+1], s.S1[j-1]
		e += p.MismatchHairpinLoop[pt][mm5][mm3]
		if bonus, ok := p.HexaLoop[s.Raw[i-1:j]]; ok {
			e += bonus
		}
	default:
		mm5, mm3 := s.S1[i+1], s.S1[j-1]
		e += p.MismatchHairpinLoop[pt][mm5][mm3]
	}
	return e
}

// InternalLoop returns the energy of decomposing (i,j) into the enclosed
// pair (k,l), covering the stacking-pair, bulge and interior-loop cases.
// i<k<l<j is required by the caller (sparsefold's DP loop enforces the
// MAXLOOP/TURN bounds from spec.md §4.5 before calling this).
func (o *Oracle) InternalLoop(i, j, k, l int, s Sequence) int {
	closingType := s.PairType(i, j)
	enclosedType := s.PairType(k, l)
	if closingType == NoPair || enclosedType == NoPair {
		return Inf
	}
	nl := k - i - 1
	nr := j - l - 1
	p := o.Params
	rt := RType(enclosedType)

	switch {
	case nl == 0 && nr == 0:
		return p.StackingPair[closingType][rt]
	case nl == 0 || nr == 0:
		size := nl + nr
		e := p.ExtrapolateLoop(p.Bulge, size)
		if size == 1 {
			e += p.StackingPair[closingType][rt]
		} else {
			if closingType > 2 {
				e += p.TerminalAUPenalty
			}
			if enclosedType > 2 {
				e += p.TerminalAUPenalty
			}
		}
		return e
	default:
		return o.interiorLoopEnergy(nl, nr, closingType, rt, s, i, j, k, l)
	}
}

func (o *Oracle) interiorLoopEnergy(nl, nr int, closingType, enclosedType BasePairType, s Sequence, i, j, k, l int) int {
	p := o.Params
	mm5closing, mm3closing := s.S1[i+1], s.S1[j-1]
	mm5enclosed, mm3enclosed := s.S1[l+1], s.S1[k-1]

	switch {
	case nl == 1 && nr == 1:
		return p.Interior1x1Loop[closingType][enclosedType][mm5closing][mm3closing]
	case nl == 1 && nr == 2, nl == 2 && nr == 1:
		large, small := mm5closing, mm3closing
		if nl < nr {
			large, small = mm3closing, mm5closing
		}
		return p.Interior2x1Loop[closingType][enclosedType][large][small][mm3enclosed]
	case nl == 2 && nr == 2:
		return p.Interior2x2Loop[closingType][enclosedType][mm5closing][mm3closing][mm3enclosed][mm5enclosed]
	default:
		size := nl + nr
		e := p.ExtrapolateLoop(p.InteriorLoop, size)
		asymmetry := nl - nr
		if asymmetry < 0 {
			asymmetry = -asymmetry
		}
		ninio := p.Ninio * asymmetry
		if ninio > p.MaxNinio {
			ninio = p.MaxNinio
		}
		e += ninio
		if nl == 1 || nr == 1 {
			e += p.Mismatch1xnInteriorLoop[closingType][mm5closing][mm3closing]
			e += p.Mismatch1xnInteriorLoop[enclosedType][mm3enclosed][mm5enclosed]
		} else if nl+nr == 5 {
			e += p.Mismatch2x3InteriorLoop[closingType][mm5closing][mm3closing]
			e += p.Mismatch2x3InteriorLoop[enclosedType][mm3enclosed][mm5enclosed]
		} else {
			e += p.MismatchInteriorLoop[closingType][mm5closing][mm3closing]
			e += p.MismatchInteriorLoop[enclosedType][mm3enclosed][mm5enclosed]
		}
		return e
	}
}

// DangleNone is the sentinel spec.md §4.1 calls -1: no dangling base is
// available at this side of the stem.
const DangleNone = -1

const dangleNoBase = DangleNone

// ExtStem returns the external-loop contribution for a stem of the given
// pair type, with optional 5'/3' dangling bases (dangleNoBase when absent).
func (o *Oracle) ExtStem(t BasePairType, mm5, mm3 int) int {
	return o.stemEnergy(t, mm5, mm3, o.Params.MismatchExteriorLoop, o.Params.DanglingEndsFivePrime, o.Params.DanglingEndsThreePrime, 0)
}

// MlStem returns the multi-loop-stem contribution for a stem of the given
// pair type, with optional 5'/3' dangling bases.
func (o *Oracle) MlStem(t BasePairType, mm5, mm3 int) int {
	return o.stemEnergy(t, mm5, mm3, o.Params.MismatchMultiLoop, o.Params.DanglingEndsFivePrime, o.Params.DanglingEndsThreePrime, o.Params.MultiLoopIntern[t])
}

func (o *Oracle) stemEnergy(t BasePairType, mm5, mm3 int, mismatch [][][]int, dangle5, dangle3 [][]int, base int) int {
	if t == NoPair {
		return Inf
	}
	e := base
	if t > 2 {
		e += o.Params.TerminalAUPenalty
	}
	switch {
	case mm5 >= 0 && mm3 >= 0 && o.Dangles == 2:
		e += mismatch[t][mm5][mm3]
	default:
		if mm5 >= 0 {
			e += dangle5[t][mm5]
		}
		if mm3 >= 0 {
			e += dangle3[t][mm3]
		}
	}
	return e
}

// MlClosing returns the fixed penalty for closing a multi-loop.
func (o *Oracle) MlClosing() int { return o.Params.MultiLoopClosingPenalty }

// MlBase returns the per-unpaired-base bonus inside a multi-loop.
func (o *Oracle) MlBase() int { return o.Params.MultiLoopUnpairedNucleotideBonus }
