package align

// Tracker accumulates the alignment's running optimum as the sweep
// visits cells in column-major order (spec §6). GlobalTracker simply
// remembers the most recently observed score, which works out to the
// bottom-right cell as long as the sweep's last Observe call is that
// cell. LocalTracker keeps the running max clamped at zero, matching
// the Smith-Waterman convention that an alignment never scores below
// starting fresh.
type Tracker interface {
	Observe(score int64)
	Finalize() int64
}

// GlobalTracker reports the score of the last cell observed.
type GlobalTracker struct {
	last int64
}

func (t *GlobalTracker) Observe(score int64) { t.last = score }
func (t *GlobalTracker) Finalize() int64     { return t.last }

// LocalTracker reports the best score seen anywhere, floored at 0.
type LocalTracker struct {
	best int64
}

func (t *LocalTracker) Observe(score int64) {
	if score > t.best {
		t.best = score
	}
}
func (t *LocalTracker) Finalize() int64 { return t.best }

// NewTracker returns the Tracker implementation for mode.
func NewTracker(mode Mode) Tracker {
	if mode == Local {
		return &LocalTracker{}
	}
	return &GlobalTracker{}
}
