package thermo

// BasePairType is the numerical encoding of a canonical base pair, used to
// index every loop-energy table. The six distinguishable pairs plus
// "non-standard" mirror energy_params.BasePairType in the teacher codebase.
type BasePairType int

const (
	CG BasePairType = 0
	GC BasePairType = 1
	GU BasePairType = 2
	UG BasePairType = 3
	AU BasePairType = 4
	UA BasePairType = 5
	// NonStandard denotes two bases that cannot form a canonical pair.
	NonStandard BasePairType = 6
	// NoPair is returned by EncodeBasePair when the two bases can't pair
	// at all (not even as the non-standard fallback type).
	NoPair BasePairType = -1
)

// rtype maps a base pair type to its "reversed" type, i.e. the type you get
// reading the same two bases 3'-to-5' instead of 5'-to-3'. Used when an
// interior loop's enclosed pair needs to be read from the inside out.
var rtype = [7]BasePairType{GC, CG, UG, GU, UA, AU, NonStandard}

// RType returns the reversed pair type of t.
func RType(t BasePairType) BasePairType {
	if t < 0 || int(t) >= len(rtype) {
		return NoPair
	}
	return rtype[t]
}

// nucleotideEncodedIntMap encodes a base to the integer used to index the
// dangle/mismatch tables. Starts at 1 (not 0) to match the teacher's
// energy_params.NucleotideEncodedIntMap convention, where 0 is reserved for
// "no base" at a sequence boundary.
var nucleotideEncodedIntMap = map[byte]int{
	'A': 1,
	'C': 2,
	'G': 3,
	'U': 4,
}

var basePairEncodedTypeMap = map[byte]map[byte]BasePairType{
	'C': {'G': CG},
	'G': {'C': GC, 'U': GU},
	'U': {'G': UG, 'A': UA},
	'A': {'U': AU},
}

// EncodeBasePair returns the canonical pair type of the ordered pair
// (fivePrime, threePrime), or NoPair if the two bases cannot pair.
func EncodeBasePair(fivePrime, threePrime byte) BasePairType {
	if inner, ok := basePairEncodedTypeMap[fivePrime]; ok {
		if t, ok := inner[threePrime]; ok {
			return t
		}
	}
	return NoPair
}

// Sequence holds the two 1-indexed integer encodings of an RNA string that
// the oracle's functions take as arguments: S is used for pair-type lookups,
// S1 for dangling-end/mismatch lookups. Index 0 is unused so that S[i]
// corresponds directly to the i'th base, 1-indexed, matching the data model
// every DP recursion in sparsefold is written against.
type Sequence struct {
	Raw string
	N   int
	S   []int
	S1  []int
}

// NewSequence validates raw (must be over {A,C,G,U}) and returns its
// 1-indexed encoding; an empty raw yields an empty Sequence. Non-ACGU characters are the OracleError
// condition named in spec.md §7.
func NewSequence(raw string) (Sequence, error) {
	n := len(raw)
	s := Sequence{Raw: raw, N: n, S: make([]int, n+1), S1: make([]int, n+1)}
	for i := 0; i < n; i++ {
		c := raw[i]
		v, ok := nucleotideEncodedIntMap[c]
		if !ok {
			return Sequence{}, &OracleError{Pos: i, Char: c}
		}
		s.S[i+1] = v
		s.S1[i+1] = v
	}
	return s, nil
}

// PairType returns the base pair type formed by positions i and j of s
// (1-indexed), or NoPair if they can't pair.
func (s Sequence) PairType(i, j int) BasePairType {
	return EncodeBasePair(s.Raw[i-1], s.Raw[j-1])
}
