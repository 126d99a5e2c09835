// Package restriction turns a dot-bracket restriction string into the
// per-position arrays the DP engine consults to decide which pairs are
// forced, forbidden, or free (spec.md §4.2, C2). It is grounded on
// detect_restricted_pairs and evaluate_restriction in
// original_source/sparsemfefold/src/SparseMFEFold_1.cc: a right-to-left
// scan over a stack of pending closing brackets.
package restriction
