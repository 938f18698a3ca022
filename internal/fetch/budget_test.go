package fetch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBudget_Validate(t *testing.T) {
	require.NoError(t, Budget{SizeMB: 10}.Validate())
	require.NoError(t, Budget{Articles: 2000}.Validate())
	require.ErrorIs(t, Budget{}.Validate(), ErrNoBudget)
	require.ErrorIs(t, Budget{SizeMB: 10, Articles: 2000}.Validate(), ErrBudgetConflict)
}

func TestTracker_CountTarget(t *testing.T) {
	stats := &Stats{}
	tracker, err := NewTracker(Budget{Articles: 3}, stats, nil)
	require.NoError(t, err)

	require.False(t, tracker.Stop())
	tracker.Record(1000)
	tracker.Record(1000)
	require.False(t, tracker.Stop())
	tracker.Record(1000)
	require.True(t, tracker.Stop(), "must stop at exactly the article target")
}

func TestTracker_ByteTarget(t *testing.T) {
	stats := &Stats{}
	// 1 MB target.
	tracker, err := NewTracker(Budget{SizeMB: 1}, stats, nil)
	require.NoError(t, err)

	tracker.Record(1 << 19) // half
	require.False(t, tracker.Stop())
	tracker.Record((1 << 19) - 1)
	require.False(t, tracker.Stop(), "one byte short of the target must not stop")
	tracker.Record(1)
	require.True(t, tracker.Stop(), "crossing the byte target must stop")
}

func TestTracker_FractionalSizeMB(t *testing.T) {
	stats := &Stats{}
	tracker, err := NewTracker(Budget{SizeMB: 0.5}, stats, nil)
	require.NoError(t, err)

	tracker.Record(1 << 19)
	require.True(t, tracker.Stop())
}

func TestTracker_InvalidBudget(t *testing.T) {
	_, err := NewTracker(Budget{}, &Stats{}, nil)
	require.ErrorIs(t, err, ErrNoBudget)
}

func TestTracker_ProgressEveryTenthSave(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	stats := &Stats{}
	tracker, err := NewTracker(Budget{Articles: 100}, stats, log)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		tracker.Record(2048)
	}

	lines := strings.Count(buf.String(), "msg=progress")
	require.Equal(t, 2, lines, "25 saves should produce snapshots at 10 and 20")
	require.Contains(t, buf.String(), "percent=10")
	require.Contains(t, buf.String(), "percent=20")
}

func TestStats_LogValue(t *testing.T) {
	stats := &Stats{}
	stats.incSaved()
	stats.incSkipped()
	stats.addBytes(512)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	log.Info("snapshot", "stats", stats)

	out := buf.String()
	require.Contains(t, out, "stats.saved=1")
	require.Contains(t, out, "stats.skipped=1")
	require.Contains(t, out, "stats.bytes=512")
}
