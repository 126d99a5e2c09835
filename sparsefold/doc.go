// Package sparsefold is the sparsified minimum-free-energy folding engine:
// the coupled V/W/WM/WM2 recursions (C5), the row-recompute helpers used
// only during traceback (C6), and the traceback itself (C7). It consults
// thermo for energies, restriction for forced-pairing constraints, and
// stores sparsified state in candidate.Store and tracearrow.Arena.
//
// Grounded on original_source/sparsemfefold/src/SparseMFEFold_1.cc's
// fold()/trace_back() and the matrix/candidate/arena shapes spec.md §3-4.7
// describe.
package sparsefold
