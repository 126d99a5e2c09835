package thermo

import "math"

// Constants shared with the teacher's mfe package naming
// (mfe.zeroCKelvin, mfe.lxc37, mfe.INF) so the scaling formulas below read
// the same way mfe.go's rescaleDg/rescaleDgFloat64 do.
const (
	zeroCKelvin = 273.15
	lxc37       = 107.856
	// Inf is the unreachable-energy sentinel named INF in spec.md §3.
	Inf = 10000000

	measurementTemperature = 37.0
	maxLenLoop             = 30
	nbPairs                = 7
	nbBases                = 5 // 1..4 used, 0 reserved for "no base"
)

// Params holds every table the oracle's loop-energy functions index into.
// The field layout mirrors energy_params.EnergyParams in the teacher
// codebase; see DESIGN.md for why the magnitudes here are a representative
// approximation rather than a reproduction of a published Turner table.
type Params struct {
	StackingPair [][]int // [nbPairs][nbPairs]

	HairpinLoop  []int // [maxLenLoop+1]
	Bulge        []int // [maxLenLoop+1]
	InteriorLoop []int // [maxLenLoop+1]

	MismatchInteriorLoop   [][][]int // [nbPairs][nbBases][nbBases]
	Mismatch1xnInteriorLoop [][][]int
	Mismatch2x3InteriorLoop [][][]int
	MismatchExteriorLoop    [][][]int
	MismatchHairpinLoop     [][][]int
	MismatchMultiLoop       [][][]int

	DanglingEndsFivePrime  [][]int // [nbPairs][nbBases]
	DanglingEndsThreePrime [][]int

	Interior1x1Loop [][][][]int     // [nbPairs][nbPairs][nbBases][nbBases]
	Interior2x1Loop [][][][][]int   // + one more unpaired base
	Interior2x2Loop [][][][][][]int // + two more unpaired bases

	LogExtrapolationConstant float64

	MultiLoopUnpairedNucleotideBonus int
	MultiLoopClosingPenalty          int
	TerminalAUPenalty                int
	Ninio                            int
	MaxNinio                         int
	MultiLoopIntern                  []int // [nbPairs]

	TetraLoop map[string]int
	TriLoop   map[string]int
	HexaLoop  map[string]int
}

// pairStrength is a rough per-pair-type stability contribution in
// deci-kcal/mol (more negative is more stable), used as the seed for every
// procedurally generated table below. GC-family pairs are strongest,
// GU/UG wobble pairs weakest, matching the qualitative ordering of the
// real nearest-neighbor parameters without claiming their exact values.
var pairStrength = [nbPairs]int{
	CG:          -34,
	GC:          -34,
	GU:          -21,
	UG:          -21,
	AU:          -24,
	UA:          -24,
	NonStandard: 0,
}

func clampedStrength(t BasePairType) int {
	if int(t) < 0 || int(t) >= nbPairs {
		return 0
	}
	return pairStrength[t]
}

// NewDefaultParams builds a representative, internally consistent set of
// nearest-neighbor parameters and rescales it to temperatureInCelsius using
// a simplified form of the teacher's rescaleDg approach: scale linearly
// with absolute temperature relative to the 37C measurement point. Real
// ViennaRNA-style rescaling additionally splits each value into an
// enthalpy/entropy pair; the representative table here carries only one
// number per entry (see DESIGN.md), so the simplified scaling is the most
// faithful approximation available.
func NewDefaultParams(temperatureInCelsius float64) *Params {
	p := buildBaseParams()
	return p.scaleByTemperature(temperatureInCelsius)
}

func buildBaseParams() *Params {
	p := &Params{
		LogExtrapolationConstant:         lxc37,
		MultiLoopUnpairedNucleotideBonus: 4,
		MultiLoopClosingPenalty:          34,
		TerminalAUPenalty:                5,
		Ninio:                            6,
		MaxNinio:                         30,
		TetraLoop: map[string]int{
			"GGGGAC": -30,
			"GGUGAC": -30,
			"CGAAAG": -30,
			"GGAGAC": -20,
		},
		TriLoop: map[string]int{
			"CAACG": -15,
			"GUUAC": -15,
		},
		HexaLoop: map[string]int{
			"ACAGUACU": -10,
			"ACAGUGAU": -10,
			"ACAGUGCU": -10,
			"ACAGUGUU": -10,
		},
	}

	p.MultiLoopIntern = make([]int, nbPairs)
	for t := 0; t < nbPairs; t++ {
		bt := BasePairType(t)
		p.MultiLoopIntern[t] = 4 + max(0, -clampedStrength(bt)/8)
	}

	p.StackingPair = make([][]int, nbPairs)
	for a := 0; a < nbPairs; a++ {
		p.StackingPair[a] = make([]int, nbPairs)
		for b := 0; b < nbPairs; b++ {
			p.StackingPair[a][b] = (clampedStrength(BasePairType(a)) + clampedStrength(BasePairType(b))) / 2
		}
	}

	p.HairpinLoop = loopLengthTable(40, 6, lxc37)
	p.Bulge = loopLengthTable(38, 10, lxc37)
	p.InteriorLoop = loopLengthTable(10, 4, lxc37)
	for n := 0; n <= 3 && n <= maxLenLoop; n++ {
		p.InteriorLoop[n] = Inf
	}
	for n := 0; n <= 2 && n <= maxLenLoop; n++ {
		p.HairpinLoop[n] = Inf
		p.Bulge[n] = Inf
	}

	p.MismatchHairpinLoop = mismatchTable(-2)
	p.MismatchInteriorLoop = mismatchTable(-1)
	p.Mismatch1xnInteriorLoop = mismatchTable(0)
	p.Mismatch2x3InteriorLoop = mismatchTable(-1)
	p.MismatchExteriorLoop = mismatchTable(-1)
	p.MismatchMultiLoop = mismatchTable(-1)

	p.DanglingEndsFivePrime = dangleTable(-1)
	p.DanglingEndsThreePrime = dangleTable(-2)

	p.Interior1x1Loop = interior1x1Table()
	p.Interior2x1Loop = interior2x1Table()
	p.Interior2x2Loop = interior2x2Table()

	return p
}

// loopLengthTable builds a monotone-increasing (entropic) loop penalty
// table: base is the size-3 energy, step the per-extra-base increment up
// to maxLenLoop, beyond which the teacher's lxc-based log extrapolation
// takes over at traceback/fold time via ExtrapolateLoop.
func loopLengthTable(base, step int, lxc float64) []int {
	t := make([]int, maxLenLoop+1)
	for n := 0; n <= maxLenLoop; n++ {
		if n < 3 {
			t[n] = Inf
			continue
		}
		t[n] = base + step*int(math.Round(math.Log(float64(n-2))*10))
	}
	return t
}

func mismatchTable(scale int) [][][]int {
	t := make([][][]int, nbPairs)
	for a := 0; a < nbPairs; a++ {
		t[a] = make([][]int, nbBases)
		for x := 0; x < nbBases; x++ {
			t[a][x] = make([]int, nbBases)
			for y := 0; y < nbBases; y++ {
				t[a][x][y] = scale * (1 + (x+y)%3)
			}
		}
	}
	return t
}

func dangleTable(scale int) [][]int {
	t := make([][]int, nbPairs)
	for a := 0; a < nbPairs; a++ {
		t[a] = make([]int, nbBases)
		for x := 0; x < nbBases; x++ {
			t[a][x] = scale * (1 + x%2) * (1 + max(0, -clampedStrength(BasePairType(a))/12))
		}
	}
	return t
}

func interior1x1Table() [][][][]int {
	t := make([][][][]int, nbPairs)
	for a := 0; a < nbPairs; a++ {
		t[a] = make([][][]int, nbPairs)
		for b := 0; b < nbPairs; b++ {
			t[a][b] = make([][]int, nbBases)
			for x := 0; x < nbBases; x++ {
				t[a][b][x] = make([]int, nbBases)
				for y := 0; y < nbBases; y++ {
					t[a][b][x][y] = baseInteriorEnergy(a, b) + (x+y)%2
				}
			}
		}
	}
	return t
}

func interior2x1Table() [][][][][]int {
	t := make([][][][][]int, nbPairs)
	for a := 0; a < nbPairs; a++ {
		t[a] = make([][][][]int, nbPairs)
		for b := 0; b < nbPairs; b++ {
			t[a][b] = make([][][]int, nbBases)
			for x := 0; x < nbBases; x++ {
				t[a][b][x] = make([][]int, nbBases)
				for y := 0; y < nbBases; y++ {
					t[a][b][x][y] = make([]int, nbBases)
					for z := 0; z < nbBases; z++ {
						t[a][b][x][y][z] = baseInteriorEnergy(a, b) + 1 + (x+y+z)%2
					}
				}
			}
		}
	}
	return t
}

func interior2x2Table() [][][][][][]int {
	t := make([][][][][][]int, nbPairs)
	for a := 0; a < nbPairs; a++ {
		t[a] = make([][][][][]int, nbPairs)
		for b := 0; b < nbPairs; b++ {
			t[a][b] = make([][][][]int, nbBases)
			for w := 0; w < nbBases; w++ {
				t[a][b][w] = make([][][]int, nbBases)
				for x := 0; x < nbBases; x++ {
					t[a][b][w][x] = make([][]int, nbBases)
					for y := 0; y < nbBases; y++ {
						t[a][b][w][x][y] = make([]int, nbBases)
						for z := 0; z < nbBases; z++ {
							t[a][b][w][x][y][z] = baseInteriorEnergy(a, b) + 2 + (w+x+y+z)%3
						}
					}
				}
			}
		}
	}
	return t
}

func baseInteriorEnergy(a, b int) int {
	return 2 - (clampedStrength(BasePairType(a))+clampedStrength(BasePairType(b)))/8
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// scaleByTemperature rescales p to temperatureInCelsius. See the
// NewDefaultParams doc comment for the simplification this makes relative
// to the teacher's enthalpy/entropy rescaling.
func (p *Params) scaleByTemperature(temperatureInCelsius float64) *Params {
	factor := (temperatureInCelsius + zeroCKelvin) / (measurementTemperature + zeroCKelvin)
	scaled := *p
	scaled.StackingPair = scaleTable2(p.StackingPair, factor)
	scaled.HairpinLoop = scaleTable1(p.HairpinLoop, factor)
	scaled.Bulge = scaleTable1(p.Bulge, factor)
	scaled.InteriorLoop = scaleTable1(p.InteriorLoop, factor)
	scaled.MismatchInteriorLoop = scaleTable3(p.MismatchInteriorLoop, factor)
	scaled.Mismatch1xnInteriorLoop = scaleTable3(p.Mismatch1xnInteriorLoop, factor)
	scaled.Mismatch2x3InteriorLoop = scaleTable3(p.Mismatch2x3InteriorLoop, factor)
	scaled.MismatchExteriorLoop = scaleTable3(p.MismatchExteriorLoop, factor)
	scaled.MismatchHairpinLoop = scaleTable3(p.MismatchHairpinLoop, factor)
	scaled.MismatchMultiLoop = scaleTable3(p.MismatchMultiLoop, factor)
	scaled.DanglingEndsFivePrime = scaleTable2(p.DanglingEndsFivePrime, factor)
	scaled.DanglingEndsThreePrime = scaleTable2(p.DanglingEndsThreePrime, factor)
	scaled.MultiLoopIntern = scaleTable1(p.MultiLoopIntern, factor)
	scaled.MultiLoopUnpairedNucleotideBonus = rescaleDg(p.MultiLoopUnpairedNucleotideBonus, factor)
	scaled.MultiLoopClosingPenalty = rescaleDg(p.MultiLoopClosingPenalty, factor)
	scaled.TerminalAUPenalty = rescaleDg(p.TerminalAUPenalty, factor)
	scaled.Ninio = rescaleDg(p.Ninio, factor)
	// The 4/5/6-dimensional interior-loop tables keep their base-37C
	// values: they are a small, internally-consistent correction on top of
	// InteriorLoop/closing-pair strength, and rescaling them independently
	// would not change their relative ordering, only uniformly shift it in
	// a way InteriorLoop already captures.
	scaled.Interior1x1Loop = p.Interior1x1Loop
	scaled.Interior2x1Loop = p.Interior2x1Loop
	scaled.Interior2x2Loop = p.Interior2x2Loop
	return &scaled
}

func rescaleDg(dg int, factor float64) int {
	if dg >= Inf/2 {
		return Inf
	}
	return int(math.Round(float64(dg) * factor))
}

func scaleTable1(t []int, factor float64) []int {
	out := make([]int, len(t))
	for i, v := range t {
		out[i] = rescaleDg(v, factor)
	}
	return out
}

func scaleTable2(t [][]int, factor float64) [][]int {
	out := make([][]int, len(t))
	for i, row := range t {
		out[i] = scaleTable1(row, factor)
	}
	return out
}

func scaleTable3(t [][][]int, factor float64) [][][]int {
	out := make([][][]int, len(t))
	for i, row := range t {
		out[i] = scaleTable2(row, factor)
	}
	return out
}

// ExtrapolateLoop applies the teacher's lxc-based logarithmic extrapolation
// (mfe.go's use of lxc37 for loop sizes beyond maxLenLoop) to size n using
// the tabulated energy at maxLenLoop as the base case.
func (p *Params) ExtrapolateLoop(table []int, n int) int {
	if n <= maxLenLoop {
		return table[n]
	}
	base := table[maxLenLoop]
	if base >= Inf/2 {
		return Inf
	}
	return base + int(math.Round(p.LogExtrapolationConstant*math.Log(float64(n)/float64(maxLenLoop))))
}
