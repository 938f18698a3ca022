package fetch

import (
	"log/slog"
	"sync/atomic"
)

// Stats accumulates run progress. Counters only ever increase; atomics keep
// snapshots consistent for progress reporting even if a future caller reads
// them from another goroutine.
type Stats struct {
	bytes   atomic.Int64 // content bytes written
	saved   atomic.Int64 // documents written
	skipped atomic.Int64 // records rejected by the filter
}

// Bytes returns the content bytes written so far.
func (s *Stats) Bytes() int64 { return s.bytes.Load() }

// Saved returns the number of documents written so far.
func (s *Stats) Saved() int64 { return s.saved.Load() }

// Skipped returns the number of records rejected so far.
func (s *Stats) Skipped() int64 { return s.skipped.Load() }

// LogValue implements slog.LogValuer for structured logging.
func (s *Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("saved", s.Saved()),
		slog.Int64("skipped", s.Skipped()),
		slog.Int64("bytes", s.Bytes()),
	)
}

func (s *Stats) addBytes(n int64) int64 { return s.bytes.Add(n) }
func (s *Stats) incSaved() int64        { return s.saved.Add(1) }
func (s *Stats) incSkipped() int64      { return s.skipped.Add(1) }
