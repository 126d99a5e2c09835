package sparsefold

import (
	"github.com/nnfold/sparsefold/restriction"
	"github.com/nnfold/sparsefold/thermo"
)

// DenseFold computes the MFE the same way Fold does, but with a full n x n
// V matrix and brute-force k/l scans instead of CL and the trace-arrow
// arena. It exists only as a reference for the candidate-completeness
// property (spec.md §8.1): DenseFold and Engine.Fold must agree on every
// input, since sparsification only changes which intermediate values are
// remembered, never which are computed.
func DenseFold(seq thermo.Sequence, restr *restriction.Table, oracle *thermo.Oracle, maxloop int) int {
	n := seq.N
	t := thermo.Turn()

	v := make([][]int, n+2)
	for i := range v {
		v[i] = make([]int, n+2)
		for j := range v[i] {
			v[i][j] = thermo.Inf
		}
	}
	w := make([]int, n+1)
	wm := make([]int, n+1)
	wm2 := make([]int, n+1)
	dmli1 := make([]int, n+1)
	dmli2 := make([]int, n+1)
	for i := range wm {
		wm[i] = thermo.Inf
		wm2[i] = thermo.Inf
		dmli1[i] = thermo.Inf
		dmli2[i] = thermo.Inf
	}

	dangle := func(pos int) int {
		if pos < 1 || pos > n || !restr.Free(pos) {
			return thermo.DangleNone
		}
		return seq.S1[pos]
	}

	for i := n; i >= 1; i-- {
		hi := i + t
		if hi > n {
			hi = n
		}
		for m := i - 1; m <= hi; m++ {
			if m < 0 {
				continue
			}
			w[m] = 0
			wm[m] = thermo.Inf
			wm2[m] = thermo.Inf
		}

		for j := i + t + 1; j <= n; j++ {
			canPair := seq.PairType(i, j) != thermo.NoPair &&
				!restr.ForcedUnpaired(i) && !restr.ForcedUnpaired(j) &&
				restr.Evaluate(i, j, false)

			vij := thermo.Inf
			if canPair {
				vh := thermo.Inf
				if restr.CanSpanUnpaired(i+1, j) {
					vh = oracle.Hairpin(i, j, seq)
				}

				vil := thermo.Inf
				for k := i + 1; k < j; k++ {
					if restr.ForcedUnpaired(k) || !restr.CanSpanUnpaired(i+1, k) {
						continue
					}
					for l := k + t + 1; l < j; l++ {
						span := (k - i) + (j - l) - 2
						if span > maxloop {
							continue
						}
						if restr.ForcedUnpaired(l) || !restr.CanSpanUnpaired(l+1, j) {
							continue
						}
						if restr.PTable[k] > 0 && restr.PTable[k] != l {
							continue
						}
						if restr.PTable[l] > 0 && restr.PTable[l] != k {
							continue
						}
						if v[k][l] >= thermo.Inf {
							continue
						}
						cand := v[k][l] + oracle.InternalLoop(i, j, k, l, seq)
						if cand < vil {
							vil = cand
						}
					}
				}

				vsplit := denseMlClosing(oracle, restr, seq, dmli1, dmli2, i, j, dangle)
				vij = minOf(vh, vil, vsplit)
			}

			wv, wmv := thermo.Inf, thermo.Inf
			if vij < thermo.Inf {
				pt := seq.PairType(i, j)
				mm5, mm3 := dangle(i-1), dangle(j+1)
				wv = vij + oracle.ExtStem(pt, mm5, mm3)
				wmv = vij + oracle.MlStem(pt, mm5, mm3)
			}

			wSplit := thermo.Inf
			wmSplit, wm2Split := thermo.Inf, thermo.Inf
			km1 := 0
			haveSplit := false
			for k := i + 1; k <= j; k++ {
				if !restr.Compatible(k, j) {
					continue
				}
				if v[k][j] >= thermo.Inf {
					continue
				}
				pt := seq.PairType(k, j)
				mm5, mm3 := dangle(k-1), dangle(j+1)
				extStem := v[k][j] + oracle.ExtStem(pt, mm5, mm3)
				mlStem := v[k][j] + oracle.MlStem(pt, mm5, mm3)

				cand := w[k-1] + extStem
				forced := restr.Forced(k, j)
				if cand < wSplit || forced {
					wSplit = cand
				}

				candWM := wm[k-1] + mlStem
				if restr.CanSpanUnpaired(i, k) {
					base := (k-i)*oracle.MlBase() + mlStem
					if base < candWM {
						candWM = base
					}
				}
				candWM2 := wm[k-1] + mlStem
				if candWM < wmSplit || forced {
					wmSplit = candWM
				}
				if candWM2 < wm2Split || forced {
					wm2Split = candWM2
					km1 = k - 1
					haveSplit = true
				}
				if forced {
					break
				}
			}
			if restr.Free(j) && w[j-1] < wSplit {
				wSplit = w[j-1]
			}
			if restr.Free(j) {
				unpaired := wm[j-1] + oracle.MlBase()
				if unpaired < wmSplit {
					wmSplit = unpaired
				}
			}
			if haveSplit && !restr.Evaluate(i, km1, true) {
				wmSplit, wm2Split = thermo.Inf, thermo.Inf
			}

			forced := restr.Forced(i, j)
			wFinal := wSplit
			if forced {
				wFinal = wv
			} else if wv < wFinal {
				wFinal = wv
			}
			wmFinal := wmSplit
			if forced {
				wmFinal = wmv
			} else if wmv < wmFinal {
				wmFinal = wmv
			}

			v[i][j] = vij
			w[j] = wFinal
			wm[j] = wmFinal
			wm2[j] = wm2Split
		}

		dmli2, dmli1 = dmli1, cloneInts(wm2)
	}

	return w[n]
}

func denseMlClosing(oracle *thermo.Oracle, restr *restriction.Table, seq thermo.Sequence, dmli1, dmli2 []int, i, j int, dangle func(int) int) int {
	pt := thermo.RType(seq.PairType(i, j))
	if pt == thermo.NoPair {
		return thermo.Inf
	}
	closing := oracle.MlClosing()
	switch oracle.Dangles {
	case 2:
		mm5, mm3 := dangle(j-1), dangle(i+1)
		return dmli1[j-1] + oracle.MlStem(pt, mm5, mm3) + closing
	default:
		best := dmli1[j-1] + oracle.MlStem(pt, thermo.DangleNone, thermo.DangleNone) + closing
		if restr.Free(i + 1) {
			mm5 := dangle(j - 1)
			cand := dmli2[j-1] + oracle.MlStem(pt, mm5, thermo.DangleNone) + closing
			if cand < best {
				best = cand
			}
		}
		if restr.Free(j - 1) {
			mm3 := dangle(i + 1)
			cand := dmli1[j-2] + oracle.MlStem(pt, thermo.DangleNone, mm3) + closing
			if cand < best {
				best = cand
			}
		}
		if restr.Free(i+1) && restr.Free(j-1) {
			mm5, mm3 := dangle(j-1), dangle(i+1)
			cand := dmli2[j-2] + oracle.MlStem(pt, mm5, mm3) + closing
			if cand < best {
				best = cand
			}
		}
		return best
	}
}
