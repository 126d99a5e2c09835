package thermo

import "fmt"

// OracleError is returned when a sequence contains a character outside
// {A,C,G,U}, the error kind spec.md §7 assigns to the encoder.
type OracleError struct {
	Pos  int
	Char byte
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("thermo: invalid base %q at position %d, expected one of A,C,G,U", e.Char, e.Pos+1)
}
