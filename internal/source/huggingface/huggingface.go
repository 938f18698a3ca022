// Package huggingface streams dataset rows from the Hugging Face
// datasets-server REST API, one page at a time.
package huggingface

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/openrag/wikifetch/internal/model"
	"github.com/openrag/wikifetch/internal/source"
	"github.com/openrag/wikifetch/internal/source/httpclient"
)

const (
	defaultEndpoint = "https://datasets-server.huggingface.co"
	dataset         = "wikimedia/wikipedia"
	defaultPageSize = 100
)

func init() {
	source.Register("huggingface", New)
}

// Source pulls wikimedia/wikipedia rows through the /rows endpoint. Pages
// are fetched on demand only: a new request is issued when the current page
// buffer is drained, so no row is requested ahead of the caller's pulls.
type Source struct {
	client   *httpclient.Client
	config   string // dataset config name, e.g. "20231101.simple"
	split    string
	pageSize int

	offset int64 // next row offset to request
	total  int64 // num_rows_total reported by the server, -1 until known
	buf    []model.Article
}

// Response types (unexported).

type rowsResponse struct {
	Rows         []rowWrapper `json:"rows"`
	NumRowsTotal int64        `json:"num_rows_total"`
}

type rowWrapper struct {
	RowIdx int64 `json:"row_idx"`
	Row    row   `json:"row"`
}

type row struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// New creates a Source for the configured edition and split. The first
// request is deferred to the first Next call; an unknown edition surfaces
// there as a *source.UnavailableError.
func New(cfg source.Config) (source.Source, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	split := cfg.Split
	if split == "" {
		split = "train"
	}
	return &Source{
		client:   httpclient.New(endpoint, cfg.APIToken),
		config:   cfg.Edition.DatasetConfig(),
		split:    split,
		pageSize: pageSize,
		total:    -1,
	}, nil
}

// Next returns the next article, fetching the next page only when the
// buffer is empty. Returns io.EOF once the dataset is exhausted.
func (s *Source) Next(ctx context.Context) (model.Article, error) {
	if len(s.buf) == 0 {
		if err := s.fetchPage(ctx); err != nil {
			return model.Article{}, err
		}
		if len(s.buf) == 0 {
			return model.Article{}, io.EOF
		}
	}
	a := s.buf[0]
	s.buf = s.buf[1:]
	return a, nil
}

func (s *Source) fetchPage(ctx context.Context) error {
	if s.total >= 0 && s.offset >= s.total {
		return io.EOF
	}

	q := url.Values{}
	q.Set("dataset", dataset)
	q.Set("config", s.config)
	q.Set("split", s.split)
	q.Set("offset", strconv.FormatInt(s.offset, 10))
	q.Set("length", strconv.Itoa(s.pageSize))

	var resp rowsResponse
	if err := s.client.GetJSON(ctx, "/rows", q, &resp); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &source.UnavailableError{Dataset: s.config, Err: err}
	}

	if len(resp.Rows) == 0 {
		s.total = s.offset // server has nothing more
		return io.EOF
	}

	s.buf = make([]model.Article, 0, len(resp.Rows))
	for _, w := range resp.Rows {
		s.buf = append(s.buf, model.Article{
			ID:    w.Row.ID,
			URL:   w.Row.URL,
			Title: w.Row.Title,
			Text:  w.Row.Text,
		})
	}
	s.offset += int64(len(resp.Rows))
	if resp.NumRowsTotal > 0 {
		s.total = resp.NumRowsTotal
	}
	return nil
}

var _ source.Source = (*Source)(nil)

// String identifies the source in logs.
func (s *Source) String() string {
	return fmt.Sprintf("huggingface:%s/%s@%s", dataset, s.config, s.split)
}
