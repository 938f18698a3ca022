package source

import (
	"context"
	"fmt"

	"github.com/openrag/wikifetch/internal/edition"
	"github.com/openrag/wikifetch/internal/model"
)

// Source yields corpus records one at a time. Implementations stream from a
// remote provider and must never require the full corpus in memory.
//
// Next returns io.EOF once the corpus is exhausted. Callers decide whether
// to keep pulling; a Source must not fetch ahead of demand beyond its own
// page buffering.
type Source interface {
	Next(ctx context.Context) (model.Article, error)
}

// Config holds provider-independent source settings.
type Config struct {
	Edition  edition.Edition
	Split    string // dataset split, e.g. "train"
	Endpoint string // base URL override, empty = provider default
	APIToken string // bearer token, optional
	PageSize int    // rows per request, <= 0 uses the provider default
}

// UnavailableError reports that a source could not be initialized or failed
// mid-stream, carrying the dataset config name as a hint.
type UnavailableError struct {
	Dataset string // e.g. "20231101.simple"
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("source unavailable: dataset config %q: %v", e.Dataset, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
