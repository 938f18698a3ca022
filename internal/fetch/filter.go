package fetch

import (
	"strings"
	"unicode/utf8"

	"github.com/openrag/wikifetch/internal/model"
)

const (
	// minTrimmedRunes rejects empty and near-empty records.
	minTrimmedRunes = 100
	// minTotalRunes rejects stub articles. Measured on the untrimmed text;
	// the trimmed/untrimmed distinction decides borderline records and must
	// stay as is.
	minTotalRunes = 500
)

// Admissible reports whether an article carries enough body text to keep.
// Counts are code points, not bytes.
func Admissible(a model.Article) bool {
	if utf8.RuneCountInString(strings.TrimSpace(a.Text)) < minTrimmedRunes {
		return false
	}
	if utf8.RuneCountInString(a.Text) < minTotalRunes {
		return false
	}
	return true
}
