package model

// Article is the intermediate type produced by sources and consumed by the
// fetch pipeline. It mirrors one row of the wikimedia/wikipedia dataset.
type Article struct {
	ID    string // dataset record identifier (may be empty)
	URL   string // canonical article URL (may be empty)
	Title string
	Text  string // full article body
}
