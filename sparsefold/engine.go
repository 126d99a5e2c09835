package sparsefold

import (
	"github.com/nnfold/sparsefold/candidate"
	"github.com/nnfold/sparsefold/restriction"
	"github.com/nnfold/sparsefold/thermo"
	"github.com/nnfold/sparsefold/tracearrow"
)

// LoopKind classifies how a traced pair's V-energy was decomposed, the
// structTable bookkeeping SPEC_FULL.md's supplemented-features section
// carries over from the original source's update_table/trace_V.
type LoopKind int

const (
	LoopUnknown LoopKind = iota
	LoopHairpin
	LoopStack
	LoopBulge
	LoopInterior
	LoopMulti
)

// Engine is a SparseMFEFold instance: the matrices, candidate store and
// trace-arrow arena for one sequence, reusable across folds via Reset.
type Engine struct {
	seq    thermo.Sequence
	n      int
	oracle *thermo.Oracle
	restr  *restriction.Table

	maxloop int
	noGC    bool
	mark    bool

	vwin *vWindow
	W    []int
	WM   []int
	WM2  []int
	dmli1 []int
	dmli2 []int

	CL *candidate.Store
	TA *tracearrow.Arena

	loopCounts [6]int
}

// New constructs an Engine for seq under restr using oracle and cfg.
// restr must not be nil; pass restriction.NoRestriction(len) for an
// unrestricted fold.
func New(seq thermo.Sequence, restr *restriction.Table, oracle *thermo.Oracle, cfg Config) (*Engine, error) {
	if restr.N != seq.N {
		return nil, &LengthMismatch{SequenceLength: seq.N, RestrictionLength: restr.N}
	}
	if oracle.Dangles != 1 && oracle.Dangles != 2 {
		return nil, &ArgParseError{Reason: "dangles mode must be 1 or 2"}
	}
	n := seq.N
	e := &Engine{
		seq:     seq,
		n:       n,
		oracle:  oracle,
		restr:   restr,
		maxloop: cfg.maxLoop(),
		noGC:    cfg.NoGC,
		mark:    cfg.MarkCandidates,
	}
	e.allocate()
	return e, nil
}

func (e *Engine) allocate() {
	e.vwin = newVWindow(e.n, e.maxloop)
	e.W = make([]int, e.n+1)
	e.WM = make([]int, e.n+1)
	e.WM2 = make([]int, e.n+1)
	e.dmli1 = make([]int, e.n+1)
	e.dmli2 = make([]int, e.n+1)
	for i := range e.WM {
		e.WM[i] = thermo.Inf
		e.WM2[i] = thermo.Inf
		e.dmli1[i] = thermo.Inf
		e.dmli2[i] = thermo.Inf
	}
	e.CL = candidate.New(e.n)
	e.TA = tracearrow.New()
	e.loopCounts = [6]int{}
}

// Reset clears all matrices and the arena, ready for a fresh fold,
// optionally under a new restriction table. n, sequence encoding and
// oracle parameters are preserved, matching spec.md §5's reset() contract.
func (e *Engine) Reset(restr *restriction.Table) error {
	if restr.N != e.n {
		return &LengthMismatch{SequenceLength: e.n, RestrictionLength: restr.N}
	}
	e.restr = restr
	e.allocate()
	return nil
}

// N returns the sequence length.
func (e *Engine) N() int { return e.n }

// Energy returns the MFE in deci-kcal/mol; call only after Fold.
func (e *Engine) Energy() int { return e.W[e.n] }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func minOf(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// pairAllowed is the canH/E_MbLoop gate from SparseMFEFold_1.cc, checked
// independently by each V(i,j) sub-case rather than trusted to the coarser
// restr.Evaluate straddle check alone: i and j may close a loop only if
// neither is forced to pair elsewhere, or both are forced to pair with
// each other.
func (e *Engine) pairAllowed(i, j int) bool {
	pi, pj := e.restr.PTable[i], e.restr.PTable[j]
	if pi > 0 || pj > 0 {
		return pi == j && pj == i
	}
	return true
}

// dangleBase returns the S1 encoding of position pos if it exists and is
// not forced to pair, or thermo.DangleNone otherwise.
func (e *Engine) dangleBase(pos int) int {
	if pos < 1 || pos > e.n {
		return thermo.DangleNone
	}
	if !e.restr.Free(pos) {
		return thermo.DangleNone
	}
	return e.seq.S1[pos]
}

// Fold runs the DP engine (C5) to completion and returns the MFE in
// deci-kcal/mol. It must be called exactly once per Engine (or once per
// Reset).
func (e *Engine) Fold() int {
	n, t := e.n, thermo.Turn()
	for i := n; i >= 1; i-- {
		e.zeroRowPrefix(i)
		for j := i + t + 1; j <= n; j++ {
			e.fillCell(i, j)
		}
		e.endRow(i)
	}
	return e.W[n]
}

func (e *Engine) zeroRowPrefix(i int) {
	hi := min(i+thermo.Turn(), e.n)
	for m := i - 1; m <= hi; m++ {
		if m < 0 {
			continue
		}
		e.W[m] = 0
		e.WM[m] = thermo.Inf
		e.WM2[m] = thermo.Inf
	}
}

func (e *Engine) fillCell(i, j int) {
	wSplit := e.computeWSplit(i, j)
	wmSplit, wm2Split := e.computeWMSplits(i, j)

	canPair := e.seq.PairType(i, j) != thermo.NoPair &&
		!e.restr.ForcedUnpaired(i) && !e.restr.ForcedUnpaired(j) &&
		e.restr.Evaluate(i, j, false)

	vIJ := thermo.Inf
	bestK, bestL, bestE := 0, 0, thermo.Inf
	usedILoop := false

	if canPair {
		vH := thermo.Inf
		if e.pairAllowed(i, j) && e.restr.CanSpanUnpaired(i+1, j) {
			vH = e.oracle.Hairpin(i, j, e.seq)
		}

		vIloop := thermo.Inf
		if e.pairAllowed(i, j) {
			maxK := min(j-1, i+e.maxloop+1)
			for k := i + 1; k <= maxK; k++ {
				if !e.restr.CanSpanUnpaired(i+1, k) {
					continue
				}
				if e.restr.ForcedUnpaired(k) {
					continue
				}
				for l := k + thermo.Turn() + 1; l < j; l++ {
					span := (k - i) + (j - l) - 2
					if span > e.maxloop {
						continue
					}
					if !e.restr.CanSpanUnpaired(l+1, j) {
						continue
					}
					if e.restr.ForcedUnpaired(l) {
						continue
					}
					if e.restr.PTable[k] > 0 && e.restr.PTable[k] != l {
						continue
					}
					if e.restr.PTable[l] > 0 && e.restr.PTable[l] != k {
						continue
					}
					ve, ok := e.vwin.Get(k, l)
					if !ok || ve >= thermo.Inf {
						continue
					}
					cand := ve + e.oracle.InternalLoop(i, j, k, l, e.seq)
					if cand < vIloop {
						vIloop = cand
						bestK, bestL, bestE = k, l, ve
					}
				}
			}
		}

		vSplit := e.mlClosing(i, j)
		vIJ = minOf(vH, vIloop, vSplit)
		usedILoop = vIJ == vIloop && vIloop < thermo.Inf
	}

	wV, wmV := thermo.Inf, thermo.Inf
	if vIJ < thermo.Inf {
		mm5 := e.dangleBase(i - 1)
		mm3 := e.dangleBase(j + 1)
		pt := e.seq.PairType(i, j)
		wV = vIJ + e.oracle.ExtStem(pt, mm5, mm3)
		wmV = vIJ + e.oracle.MlStem(pt, mm5, mm3)
	}

	forced := e.restr.Forced(i, j)

	wFinal := wSplit
	if forced {
		wFinal = wV
	} else if wV < wFinal {
		wFinal = wV
	}

	wmFinal := wmSplit
	if forced {
		wmFinal = wmV
	} else if wmV < wmFinal {
		wmFinal = wmV
	}

	e.W[j] = wFinal
	e.WM[j] = wmFinal
	e.WM2[j] = wm2Split
	e.vwin.Set(i, j, vIJ)

	isCandidate := forced || wV < wSplit || wmV < wmSplit
	if isCandidate && vIJ < thermo.Inf {
		e.CL.Register(i, j, vIJ)
		if usedILoop {
			if e.CL.Contains(bestK, bestL) {
				e.TA.Avoid()
			} else {
				e.TA.Register(i, j, bestK, bestL, bestE)
				e.TA.IncSourceRef(i, j)
			}
		}
	}
}

// computeWSplit implements spec.md §4.5's W-split formula, scanning CL[j]
// for k >= i. Also used unmodified by RecomputeW, where CL[j] may already
// contain an entry with k == i (the anchor itself), folding the direct-pair
// contribution into the same scan.
func (e *Engine) computeWSplit(i, j int) int {
	wSplit := thermo.Inf
	for _, ent := range e.CL.List(j) {
		k := ent.K
		if k < i {
			continue
		}
		if !e.restr.Compatible(k, j) {
			continue
		}
		mm5 := e.dangleBase(k - 1)
		mm3 := e.dangleBase(j + 1)
		cand := e.W[k-1] + ent.Energy + e.oracle.ExtStem(e.seq.PairType(k, j), mm5, mm3)
		if e.restr.Forced(k, j) {
			wSplit = cand
			break
		}
		if cand < wSplit {
			wSplit = cand
		}
	}
	if e.restr.Free(j) && e.W[j-1] < wSplit {
		wSplit = e.W[j-1]
	}
	return wSplit
}

// computeWMSplits implements spec.md §4.5's WM/WM2-split formula, including
// the evaluate(i, km1, multiloop=true) invalidation.
func (e *Engine) computeWMSplits(i, j int) (wmSplit, wm2Split int) {
	wmSplit, wm2Split = thermo.Inf, thermo.Inf
	km1 := 0
	haveSplit := false
	for _, ent := range e.CL.List(j) {
		k := ent.K
		if k < i {
			continue
		}
		if !e.restr.Compatible(k, j) {
			continue
		}
		mm5 := e.dangleBase(k - 1)
		mm3 := e.dangleBase(j + 1)
		stem := ent.Energy + e.oracle.MlStem(e.seq.PairType(k, j), mm5, mm3)

		candWM := e.WM[k-1] + stem
		if e.restr.CanSpanUnpaired(i, k) {
			baseCand := (k-i)*e.oracle.MlBase() + stem
			if baseCand < candWM {
				candWM = baseCand
			}
		}
		candWM2 := e.WM[k-1] + stem

		forced := e.restr.Forced(k, j)
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
	if e.restr.Free(j) {
		unpaired := e.WM[j-1] + e.oracle.MlBase()
		if unpaired < wmSplit {
			wmSplit = unpaired
		}
	}
	if haveSplit && !e.restr.Evaluate(i, km1, true) {
		wmSplit, wm2Split = thermo.Inf, thermo.Inf
	}
	return wmSplit, wm2Split
}

// mlClosing implements E_MbLoop from spec.md §4.5: the energy of closing a
// multi-loop at (i,j) using the previous-iteration WM2 snapshots.
func (e *Engine) mlClosing(i, j int) int {
	pt := thermo.RType(e.seq.PairType(i, j))
	if pt == thermo.NoPair {
		return thermo.Inf
	}
	if !e.pairAllowed(i, j) {
		return thermo.Inf
	}
	closing := e.oracle.MlClosing()
	switch e.oracle.Dangles {
	case 2:
		mm5 := e.dangleBase(j - 1)
		mm3 := e.dangleBase(i + 1)
		return e.dmli1[j-1] + e.oracle.MlStem(pt, mm5, mm3) + closing
	default: // dangles == 1
		best := e.dmli1[j-1] + e.oracle.MlStem(pt, thermo.DangleNone, thermo.DangleNone) + closing
		if e.restr.Free(i + 1) {
			mm5 := e.dangleBase(j - 1)
			cand := e.dmli2[j-1] + e.oracle.MlStem(pt, mm5, thermo.DangleNone) + closing
			if cand < best {
				best = cand
			}
		}
		if e.restr.Free(j - 1) {
			mm3 := e.dangleBase(i + 1)
			cand := e.dmli1[j-2] + e.oracle.MlStem(pt, thermo.DangleNone, mm3) + closing
			if cand < best {
				best = cand
			}
		}
		if e.restr.Free(i+1) && e.restr.Free(j-1) {
			mm5 := e.dangleBase(j - 1)
			mm3 := e.dangleBase(i + 1)
			cand := e.dmli2[j-2] + e.oracle.MlStem(pt, mm5, mm3) + closing
			if cand < best {
				best = cand
			}
		}
		return best
	}
}

func (e *Engine) endRow(i int) {
	e.dmli2, e.dmli1 = e.dmli1, cloneInts(e.WM2)
	if !e.noGC {
		if i+e.maxloop+1 <= e.n {
			e.TA.GCRow(i + e.maxloop + 1)
		}
		for j := i + thermo.Turn() + 1; j <= e.n; j++ {
			e.CL.Shrink(j)
		}
	}
	e.TA.Compactify()
}

func cloneInts(src []int) []int {
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// ArenaStats returns the arena's running counters, for --verbose output.
func (e *Engine) ArenaStats() tracearrow.Stats { return e.TA.StatsSnapshot() }

// CandidateCount returns the number of registered candidates, for
// --verbose output.
func (e *Engine) CandidateCount() int { return e.CL.Len() }

// ArenaSound reports the arena-soundness property from spec.md §8.4.
func (e *Engine) ArenaSound() bool { return e.TA.Sound(e.n, e.maxloop) }

// LoopCounts returns, in LoopKind order (Unknown, Hairpin, Stack, Bulge,
// Interior, Multi), how many traced pairs were decomposed each way. Only
// meaningful after Trace has run.
func (e *Engine) LoopCounts() [6]int { return e.loopCounts }
