package fetch

import "github.com/openrag/wikifetch/internal/model"

// ToDocument maps one admissible article to its normalized document. The
// body text is carried over unmodified. Categories are always empty — the
// dataset exposes none — but must serialize as [] rather than null.
func ToDocument(a model.Article) model.Document {
	return model.Document{
		Title:   a.Title,
		Content: a.Text,
		Metadata: model.Metadata{
			Categories: []string{},
			URL:        a.URL,
			ID:         a.ID,
		},
	}
}
