package sparsefold

import (
	"encoding/hex"
	"fmt"

	"lukechampine.com/blake3"
)

// FoldCache memoizes completed folds by a content hash of the sequence,
// restriction string and config, so a batch driver folding the same
// sequence under several restrictions (or the pseudoknot driver's two
// independent planes) can skip re-running the DP engine for a repeat.
// Not used on the single-fold CLI hot path; wired in by callers that fold
// many inputs in one process.
type FoldCache struct {
	entries map[string]Result
}

// Result is what FoldCache remembers: the MFE and its dot-bracket structure.
type Result struct {
	Energy    int
	Structure string
}

// NewFoldCache returns an empty cache.
func NewFoldCache() *FoldCache {
	return &FoldCache{entries: make(map[string]Result)}
}

// Key returns the cache key for the given inputs:
// blake3(sequence || 0x00 || restriction || 0x00 || config). The CLI does
// not print it.
func Key(sequence, restrictionStr string, cfg Config) string {
	h := blake3.New(32, nil)
	h.Write([]byte(sequence))
	h.Write([]byte{0})
	h.Write([]byte(restrictionStr))
	h.Write([]byte{0})
	fmt.Fprintf(h, "d=%d m=%t g=%t l=%d", cfg.Dangles, cfg.MarkCandidates, cfg.NoGC, cfg.maxLoop())
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for key, if present.
func (c *FoldCache) Get(key string) (Result, bool) {
	r, ok := c.entries[key]
	return r, ok
}

// Put records result under key.
func (c *FoldCache) Put(key string, result Result) {
	c.entries[key] = result
}

// Len returns the number of cached entries.
func (c *FoldCache) Len() int { return len(c.entries) }
