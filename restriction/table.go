package restriction

import "fmt"

// Table holds the three 1-indexed, length-(n+1) arrays spec.md §3 names:
//
//   - PTable[i] > 0 when i is forced to pair with PTable[i]; -1 when i is
//     forced unpaired (x/X); -2 when i is free (.).
//   - LastJ[i] is the nearest enclosing forced-closing index at or after i.
//   - InPair[i] is the nesting depth of forced pairs at i.
//
// Index 0 is unused so Table fields line up 1:1 with a thermo.Sequence.
type Table struct {
	N      int
	PTable []int
	LastJ  []int
	InPair []int
}

var openers = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}
var closers = map[byte]bool{')': true, ']': true, '}': true, '>': true}

// Parse builds a Table from restriction, a string of length n over
// {.,(,),[,],{,},<,>,x,X}. Matched brackets of any shape are equivalent
// pair markers. Returns a *Error if the brackets are not well-nested.
func Parse(restrictionStr string) (*Table, error) {
	n := len(restrictionStr)
	t := &Table{
		N:      n,
		PTable: make([]int, n+1),
		LastJ:  make([]int, n+1),
		InPair: make([]int, n+1),
	}

	// stack holds, for each currently-open closer seen scanning right to
	// left, the position of that closer and the opening character it must
	// match, so a shape mismatch (e.g. "(]") is caught at pop time.
	type pending struct {
		pos  int
		want byte
	}
	var stack []pending

	for i := n; i >= 1; i-- {
		c := restrictionStr[i-1]
		isOpenerChar := false
		switch {
		case c == '.':
			t.PTable[i] = -2
		case c == 'x' || c == 'X':
			t.PTable[i] = -1
		case closers[c]:
			stack = append(stack, pending{pos: i, want: matchingOpener(c)})
		default:
			if _, isOpener := openerFor(c); !isOpener {
				return nil, &Error{Pos: i - 1, Reason: fmt.Sprintf("unrecognized restriction character %q", c)}
			}
			if len(stack) == 0 {
				return nil, &Error{Pos: i - 1, Reason: "unmatched opening bracket"}
			}
			if stack[len(stack)-1].want != c {
				return nil, &Error{Pos: i - 1, Reason: "mismatched bracket shape"}
			}
			isOpenerChar = true
		}

		// last_j_array[i]/in_pair_array[i] are recorded from the stack state
		// before an opener pops its match, so an opener shares its partner's
		// depth/last-j (SparseMFEFold_1.cc's detect_restricted_pairs records
		// these before the erase()). An empty stack means "no enclosing
		// forced pair", sentineled to n (the C++ code seeds pairs with
		// length), not 0, so an unrestricted position's last_j is beyond
		// every valid j rather than before it.
		if len(stack) > 0 {
			t.LastJ[i] = stack[len(stack)-1].pos
		} else {
			t.LastJ[i] = t.N
		}
		t.InPair[i] = len(stack)

		if isOpenerChar {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t.PTable[i] = top.pos
			t.PTable[top.pos] = i
		}
	}

	if len(stack) != 0 {
		return nil, &Error{Pos: stack[len(stack)-1].pos - 1, Reason: "unmatched closing bracket"}
	}
	return t, nil
}

func matchingOpener(closer byte) byte {
	for o, cl := range openers {
		if cl == closer {
			return o
		}
	}
	return 0
}

func openerFor(c byte) (byte, bool) {
	cl, ok := openers[c]
	return cl, ok
}

// Evaluate is the predicate spec.md §4.2 names: it returns false when i and
// j straddle mismatched restricted regions (different nesting depth, or
// same depth but j beyond i's nearest enclosing closer). In multi-loop
// mode the check is relaxed: if a restricted pair at i or j strictly
// encloses the other endpoint, evaluation is allowed despite the depth
// mismatch. Call sites are fixed per spec.md §9: multiloop=false gates
// V(i,j) existence, multiloop=true invalidates a WM/WM2 split across km1.
func (t *Table) Evaluate(i, j int, multiloop bool) bool {
	straddles := t.InPair[i] != t.InPair[j] || j > t.LastJ[i]
	if !straddles {
		return true
	}
	if multiloop && t.enclosesOther(i, j) {
		return true
	}
	return false
}

func (t *Table) enclosesOther(i, j int) bool {
	if t.PTable[i] > 0 && t.PTable[i] >= j {
		return true
	}
	if t.PTable[j] > 0 && t.PTable[j] <= i {
		return true
	}
	return false
}

// Free reports whether position i is unrestricted (forced pair elsewhere
// does not count; only "." and "x/X" and "no restriction at all" are
// free for the purposes of hairpin/hairpin-interior gating).
func (t *Table) Free(i int) bool {
	return t.PTable[i] < 0
}

// ForcedUnpaired reports whether i must remain unpaired (x/X).
func (t *Table) ForcedUnpaired(i int) bool {
	return t.PTable[i] == -1
}

// ForcedPair reports whether i is forced to pair, and with whom.
func (t *Table) ForcedPair(i int) (j int, forced bool) {
	if t.PTable[i] > 0 {
		return t.PTable[i], true
	}
	return 0, false
}

// Compatible reports whether a and b could be the endpoints of a pair
// decomposition together: neither is forced to pair with a position other
// than the other.
func (t *Table) Compatible(a, b int) bool {
	if t.PTable[a] > 0 && t.PTable[a] != b {
		return false
	}
	if t.PTable[b] > 0 && t.PTable[b] != a {
		return false
	}
	return true
}

// Forced reports whether a and b are forced to pair with each other.
func (t *Table) Forced(a, b int) bool {
	return t.PTable[a] == b && t.PTable[b] == a
}

// CanSpanUnpaired reports whether every position in [lo, hi) is not
// forced to pair (it may be free or forced-unpaired), i.e. whether that
// span could plausibly be an unpaired loop region.
func (t *Table) CanSpanUnpaired(lo, hi int) bool {
	if lo < 1 {
		lo = 1
	}
	if hi > t.N+1 {
		hi = t.N + 1
	}
	for m := lo; m < hi; m++ {
		if t.PTable[m] > 0 {
			return false
		}
	}
	return true
}

// NoRestriction returns a Table equivalent to an all-"." restriction
// string of length n: every position free, nothing forced.
func NoRestriction(n int) *Table {
	t := &Table{N: n, PTable: make([]int, n+1), LastJ: make([]int, n+1), InPair: make([]int, n+1)}
	for i := 1; i <= n; i++ {
		t.PTable[i] = -2
		t.LastJ[i] = n
	}
	return t
}
