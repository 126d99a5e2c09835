// Package candidate implements the per-column candidate list CL spec.md
// §3/§4.4 describes (C4): for each j, the (k, V(k,j)) entries that survive
// the candidate criterion, kept in the descending-k order they're
// registered in (the DP engine's outer loop runs i from n down to 1, so
// append order already satisfies the invariant; this package never
// re-sorts).
package candidate
