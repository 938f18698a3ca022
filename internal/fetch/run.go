// Package fetch implements the bounded streaming extraction pipeline: pull
// one record at a time from a source, filter and normalize it, persist it
// under a collision-free name, and account against the run budget.
package fetch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/openrag/wikifetch/internal/source"
)

// summaryFile is written into the output directory after every completed
// (or interrupted) run.
const summaryFile = "_fetch_metadata.json"

// Options configures one run.
type Options struct {
	Budget    Budget
	OutputDir string
	Language  string // edition code, echoed into the summary
	Logger    *slog.Logger
}

// Summary is the final run report, also persisted as _fetch_metadata.json.
type Summary struct {
	ArticlesSaved   int64   `json:"articles_saved"`
	ArticlesSkipped int64   `json:"articles_skipped"`
	TotalSizeMB     float64 `json:"total_size_mb"`
	AvgArticleKB    float64 `json:"average_article_size_kb"`
	OutputDirectory string  `json:"output_directory"`
	Language        string  `json:"language"`
}

// Run drives one fetch from src until the budget is met, the source is
// exhausted, or ctx is cancelled. Cancellation is not an error: the run
// finalizes with whatever progress accumulated. Source and write failures
// abort immediately; documents already written stay on disk.
func Run(ctx context.Context, src source.Source, opts Options) (Summary, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	// Budget validation happens before any I/O.
	stats := &Stats{}
	tracker, err := NewTracker(opts.Budget, stats, log)
	if err != nil {
		return Summary{}, err
	}

	writer, err := NewWriter(opts.OutputDir)
	if err != nil {
		return Summary{}, err
	}

	for !tracker.Stop() && ctx.Err() == nil {
		article, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			log.Info("source exhausted", "stats", stats)
			break
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break // interrupted mid-pull, finalize below
			}
			return Summary{}, err
		}

		if !Admissible(article) {
			stats.incSkipped()
			continue
		}

		doc := ToDocument(article)
		name, contentBytes, err := writer.Write(doc)
		if err != nil {
			return Summary{}, err
		}
		tracker.Record(contentBytes)
		log.Debug("saved", "file", name, "bytes", contentBytes)
	}

	if ctx.Err() != nil {
		log.Warn("interrupted, finalizing with partial results", "stats", stats)
	}

	summary := summarize(stats, opts)
	if err := writeJSON(writer.Dir(), filepath.Join(writer.Dir(), summaryFile), summary); err != nil {
		return Summary{}, err
	}

	log.Info("fetch complete",
		"saved", summary.ArticlesSaved,
		"skipped", summary.ArticlesSkipped,
		"total_mb", summary.TotalSizeMB,
		"avg_kb", summary.AvgArticleKB,
		"output", summary.OutputDirectory,
	)
	return summary, nil
}

func summarize(stats *Stats, opts Options) Summary {
	var avgKB float64
	if stats.Saved() > 0 {
		avgKB = float64(stats.Bytes()) / float64(stats.Saved()) / 1024
	}
	return Summary{
		ArticlesSaved:   stats.Saved(),
		ArticlesSkipped: stats.Skipped(),
		TotalSizeMB:     float64(stats.Bytes()) / (1 << 20),
		AvgArticleKB:    avgKB,
		OutputDirectory: opts.OutputDir,
		Language:        opts.Language,
	}
}
