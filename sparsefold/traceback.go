package sparsefold

import "github.com/nnfold/sparsefold/thermo"

// Trace walks W -> V -> {iloop|hairpin|WM2} -> WM -> V ... (C7) to
// reconstruct the dot-bracket structure, after Fold has run. It never
// mutates CL or the arena; it freely overwrites WM/WM2 via RecomputeWM and
// RecomputeWM2 each time it enters a multi-loop. W is read as Fold left
// it, anchored at row 1.
func (e *Engine) Trace() string {
	out := make([]byte, e.n)
	for i := range out {
		out[i] = '.'
	}
	e.loopCounts = [6]int{}
	e.traceW(1, e.n, out)
	return string(out)
}

func (e *Engine) traceW(i, j int, out []byte) {
	for j > i && e.W[j] == e.W[j-1] {
		j--
	}
	if j <= i {
		return
	}
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
		stem := ent.Energy + e.oracle.ExtStem(e.seq.PairType(k, j), mm5, mm3)
		if e.W[k-1]+stem == e.W[j] {
			e.traceW(i, k-1, out)
			e.traceV(k, j, ent.Energy, out)
			return
		}
	}
}

func (e *Engine) traceV(i, j, energy int, out []byte) {
	if e.mark && e.CL.Contains(i, j) {
		out[i-1] = '{'
		out[j-1] = '}'
	} else {
		out[i-1] = '('
		out[j-1] = ')'
	}

	if arrow, ok := e.TA.Get(i, j); ok {
		switch {
		case arrow.K == i+1 && arrow.L == j-1:
			e.loopCounts[LoopStack]++
		case arrow.K == i+1 || arrow.L == j-1:
			e.loopCounts[LoopBulge]++
		default:
			e.loopCounts[LoopInterior]++
		}
		e.traceV(arrow.K, arrow.L, arrow.TargetEnergy, out)
		return
	}

	for l := j - 1; l > i+thermo.Turn(); l-- {
		for _, ent := range e.CL.List(l) {
			k := ent.K
			if k <= i || k >= l {
				continue
			}
			if energy == ent.Energy+e.oracle.InternalLoop(i, j, k, l, e.seq) {
				switch {
				case k == i+1 && l == j-1:
					e.loopCounts[LoopStack]++
				case k == i+1 || l == j-1:
					e.loopCounts[LoopBulge]++
				default:
					e.loopCounts[LoopInterior]++
				}
				e.traceV(k, l, ent.Energy, out)
				return
			}
		}
	}

	if energy == e.oracle.Hairpin(i, j, e.seq) {
		e.loopCounts[LoopHairpin]++
		return
	}

	e.loopCounts[LoopMulti]++
	e.RecomputeWM(i+1, j-1)
	e.RecomputeWM2(i+1, j-1)
	e.traceWM2(i+1, j-1, out)
}

func (e *Engine) traceWM(i, j, energy int, out []byte) {
	if j < i {
		return
	}
	if e.restr.Free(j) && energy == e.WM[j-1]+e.oracle.MlBase() {
		e.traceWM(i, j-1, e.WM[j-1], out)
		return
	}
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

		if e.restr.CanSpanUnpaired(i, k) {
			baseCand := (k-i)*e.oracle.MlBase() + stem
			if baseCand == energy {
				e.traceV(k, j, ent.Energy, out)
				return
			}
		}
		if e.WM[k-1]+stem == energy {
			e.traceWM(i, k-1, e.WM[k-1], out)
			e.traceV(k, j, ent.Energy, out)
			return
		}
	}
}

func (e *Engine) traceWM2(i, j int, out []byte) {
	if j < i {
		return
	}
	energy := e.WM2[j]
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
		if e.WM[k-1]+stem == energy {
			e.traceWM(i, k-1, e.WM[k-1], out)
			e.traceV(k, j, ent.Energy, out)
			return
		}
	}
}
