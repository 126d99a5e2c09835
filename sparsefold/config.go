package sparsefold

// Config carries the per-run tunables spec.md §6 exposes as CLI flags.
type Config struct {
	// Dangles selects the dangling-end mode: 1 or 2. See spec.md §9's
	// dangles=3 Open Question (omitted here).
	Dangles int
	// MarkCandidates emits '{'/'}' instead of '('/')' at positions whose
	// base pair is a registered candidate.
	MarkCandidates bool
	// NoGC disables trace-arrow garbage collection and per-row candidate
	// shrinking, used by the arena-soundness boundary test (spec.md §8).
	NoGC bool
	// MaxLoop is MAXLOOP, the maximum interior-loop unpaired span. Defaults
	// to 30 when zero.
	MaxLoop int
}

func (c Config) maxLoop() int {
	if c.MaxLoop <= 0 {
		return 30
	}
	return c.MaxLoop
}
