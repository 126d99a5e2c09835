// Package pseudoknot implements the C8 pseudoknot driver: it folds a
// sequence twice under two restrictions derived from a user-supplied
// restriction, then overlays the two bracket strings into one that mixes
// "()" and "[]". The overlay is a post-processing step with no bearing on
// either fold's DP correctness; it does not guarantee the combined
// structure is crossing-free in the formal sense.
package pseudoknot
