package tracearrow

import (
	"encoding/hex"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// RowChecksum folds row r's (j, k, l, refcount) tuples through blake2b-256,
// in ascending-j order, so two arenas that touched the same row can confirm
// it without diffing the whole structure. Never consulted by GCRow or
// Sound; the CLI's --verbose output does not print it.
func (a *Arena) RowChecksum(r int) string {
	row, ok := a.rows[r]
	if !ok {
		return ""
	}
	cols := make([]int, 0, len(row))
	for j := range row {
		cols = append(cols, j)
	}
	sort.Ints(cols)

	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	for _, j := range cols {
		arrow := row[j]
		fmt.Fprintf(h, "%d:%d:%d:%d;", j, arrow.K, arrow.L, arrow.RefCount)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// AuditChecksums returns RowChecksum for every live row, keyed by row index,
// for a full-arena audit print.
func (a *Arena) AuditChecksums() map[int]string {
	out := make(map[int]string, len(a.rows))
	for r := range a.rows {
		out[r] = a.RowChecksum(r)
	}
	return out
}
