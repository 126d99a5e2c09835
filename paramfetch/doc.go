// Package paramfetch scrapes a published nearest-neighbor energy table,
// rendered as an HTML grid, into the integer matrix shape thermo.Params
// expects. It is a standalone helper for operators who want to replace the
// procedurally-generated default parameters with numbers taken from a real
// NNDB page; nothing on the fold hot path imports it.
package paramfetch
