package fetch

import (
	"errors"
	"log/slog"
)

// Budget is the caller-chosen stopping criterion: a target dataset size or
// a target document count. Exactly one must be set.
type Budget struct {
	SizeMB   float64 // target size in megabytes, 0 = unset
	Articles int     // target document count, 0 = unset
}

var (
	// ErrNoBudget is returned when neither a size nor a count target is set.
	ErrNoBudget = errors.New("must specify either a size or an article target")
	// ErrBudgetConflict is returned when both targets are set.
	ErrBudgetConflict = errors.New("cannot specify both a size and an article target")
)

// Validate checks the exactly-one-target invariant.
func (b Budget) Validate() error {
	switch {
	case b.SizeMB <= 0 && b.Articles <= 0:
		return ErrNoBudget
	case b.SizeMB > 0 && b.Articles > 0:
		return ErrBudgetConflict
	}
	return nil
}

// targetBytes returns the byte threshold for size mode, 0 in count mode.
func (b Budget) targetBytes() int64 {
	if b.SizeMB <= 0 {
		return 0
	}
	return int64(b.SizeMB * (1 << 20))
}

// reportEvery is how many saved documents pass between progress snapshots.
const reportEvery = 10

// Tracker evaluates the stopping condition and emits periodic progress.
// Record is called once per written document; Stop must be checked before
// each source pull so no record is requested past the target.
type Tracker struct {
	budget      Budget
	targetBytes int64
	stats       *Stats
	log         *slog.Logger
}

// NewTracker validates the budget and returns a tracker over stats.
func NewTracker(b Budget, stats *Stats, log *slog.Logger) (*Tracker, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Tracker{
		budget:      b,
		targetBytes: b.targetBytes(),
		stats:       stats,
		log:         log,
	}, nil
}

// Stop reports whether the budget has been met.
func (t *Tracker) Stop() bool {
	if t.targetBytes > 0 {
		return t.stats.Bytes() >= t.targetBytes
	}
	return t.stats.Saved() >= int64(t.budget.Articles)
}

// Record accounts for one written document and logs a progress snapshot on
// every reportEvery-th save.
func (t *Tracker) Record(contentBytes int64) {
	bytes := t.stats.addBytes(contentBytes)
	saved := t.stats.incSaved()

	if saved%reportEvery != 0 {
		return
	}
	mb := float64(bytes) / (1 << 20)
	if t.targetBytes > 0 {
		t.log.Info("progress",
			"saved", saved,
			"mb", mb,
			"percent", float64(bytes)/float64(t.targetBytes)*100,
		)
		return
	}
	t.log.Info("progress",
		"saved", saved,
		"target", t.budget.Articles,
		"percent", float64(saved)/float64(t.budget.Articles)*100,
		"mb", mb,
	)
}
