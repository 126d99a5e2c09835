// Package thermo is the nearest-neighbor thermodynamic energy oracle used by
// the sparsefold DP engine: hairpin, internal-loop, external-stem and
// multi-loop-stem contributions, sequence encoding, and base-pair type
// tables. It mirrors the grouping of github.com/TimothyStiles/poly's
// mfe and energy_params packages (EnergyParams field layout, base pair
// encoding, loop-energy function shapes) but is reorganized around the
// oracle interface the DP engine consults: pure functions of integer
// arguments, no shared mutable state, safe to call concurrently from
// multiple fold runs.
//
// The bundled Params are representative nearest-neighbor energies, not a
// reproduction of a published parameter set: see DESIGN.md for why. Callers
// that need exact published thermodynamics should build their own Params
// and pass it to NewOracle.
package thermo
