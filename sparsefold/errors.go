package sparsefold

import "fmt"

// ArgParseError is the kind spec.md §7 assigns to an unknown flag, a
// missing required argument, or a duplicate option.
type ArgParseError struct {
	Reason string
}

func (e *ArgParseError) Error() string {
	return fmt.Sprintf("argument error: %s", e.Reason)
}

// LengthMismatch is raised when the restriction string's length does not
// equal the sequence's length.
type LengthMismatch struct {
	SequenceLength   int
	RestrictionLength int
}

func (e *LengthMismatch) Error() string {
	return fmt.Sprintf("restriction length %d does not match sequence length %d", e.RestrictionLength, e.SequenceLength)
}
