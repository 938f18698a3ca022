package model

// Document is the normalized output unit, serialized one file per article in
// the format the RAG ingestion side expects.
type Document struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

// Metadata carries provenance for a Document. Categories is always present
// in the serialized form, even when empty — the dataset carries no category
// information, so it is empty by construction.
type Metadata struct {
	Categories []string `json:"categories"`
	URL        string   `json:"url"`
	ID         string   `json:"id"`
}
