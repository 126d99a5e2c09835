// Package tracearrow implements the arena of trace arrows spec.md §3/§4.3
// (C3) describes: a mapping (i,j) -> (k,l,energy,refcount) recording the
// interior-loop decomposition of a V(i,j) cell that was not itself admitted
// as a candidate. Arrows are addressed by integer (i,j) keys rather than
// pointers, per spec.md §9's "arena over indices, not pointers" note, so
// row-wise garbage collection can operate without chasing references.
package tracearrow
