package sparsefold

import "github.com/nnfold/sparsefold/thermo"

// RecomputeW rebuilds W[i-1..jmax] anchored at i (C6), a pure function of
// CL, the restriction table and (i, jmax). Trace does not call it: its
// W-level walk always stays anchored at row 1.
func (e *Engine) RecomputeW(i, jmax int) {
	hi := min(i+thermo.Turn(), jmax)
	for m := i - 1; m <= hi; m++ {
		if m >= 0 {
			e.W[m] = 0
		}
	}
	for j := i + thermo.Turn() + 1; j <= jmax; j++ {
		e.W[j] = e.computeWSplit(i, j)
	}
}

// RecomputeWM rebuilds WM[i-1..jmax] anchored at i.
func (e *Engine) RecomputeWM(i, jmax int) {
	hi := min(i+thermo.Turn(), jmax)
	for m := i - 1; m <= hi; m++ {
		if m >= 0 {
			e.WM[m] = thermo.Inf
		}
	}
	for j := i + thermo.Turn() + 1; j <= jmax; j++ {
		wm, _ := e.computeWMSplits(i, j)
		e.WM[j] = wm
	}
}

// RecomputeWM2 rebuilds WM2[i-1..jmax] anchored at i. Requires WM to have
// already been recomputed for the same (i, jmax).
func (e *Engine) RecomputeWM2(i, jmax int) {
	hi := min(i+thermo.Turn(), jmax)
	for m := i - 1; m <= hi; m++ {
		if m >= 0 {
			e.WM2[m] = thermo.Inf
		}
	}
	for j := i + thermo.Turn() + 1; j <= jmax; j++ {
		_, wm2 := e.computeWMSplits(i, j)
		e.WM2[j] = wm2
	}
}
