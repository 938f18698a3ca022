package fetch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openrag/wikifetch/internal/model"
)

// WriteError reports a failed directory or file operation. Any WriteError
// is fatal to the run; documents already on disk are left in place.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// maxSuffixProbes bounds the collision probe loop. A directory with an
// unbroken run of this many suffixed names is treated as a write failure
// rather than probing forever.
const maxSuffixProbes = 10000

// titleCleaner replaces each filesystem-unsafe character with an underscore.
// All other characters keep their positions.
var titleCleaner = strings.NewReplacer(
	"/", "_", `\`, "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// Writer persists documents as individual JSON files in a single output
// directory, choosing a fresh filename for every document.
type Writer struct {
	dir string
}

// NewWriter ensures dir exists (creating parents as needed) and returns a
// Writer over it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write persists doc under a collision-free name and returns the filename
// used plus the byte length of the content field. Collisions are resolved
// by probing _1, _2, ... against the live directory state, so files from
// earlier runs are never overwritten.
func (w *Writer) Write(doc model.Document) (string, int64, error) {
	name, err := w.freshName(titleCleaner.Replace(doc.Title))
	if err != nil {
		return "", 0, err
	}
	dest := filepath.Join(w.dir, name)
	if err := writeJSON(w.dir, dest, doc); err != nil {
		return "", 0, err
	}
	return name, int64(len(doc.Content)), nil
}

// freshName returns the first of base.json, base_1.json, base_2.json, ...
// that does not exist on disk.
func (w *Writer) freshName(base string) (string, error) {
	name := base + ".json"
	for counter := 1; fileExists(filepath.Join(w.dir, name)); counter++ {
		if counter > maxSuffixProbes {
			return "", &WriteError{
				Path: filepath.Join(w.dir, base+".json"),
				Err:  fmt.Errorf("no free filename after %d probes", maxSuffixProbes),
			}
		}
		name = fmt.Sprintf("%s_%d.json", base, counter)
	}
	return name, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeJSON writes v to dest via a temp file in the same directory followed
// by a rename, so a reader never observes a partially written file. Output
// is 2-space indented UTF-8 with non-ASCII characters written literally.
func writeJSON(dir, dest string, v any) error {
	tmp, err := os.CreateTemp(dir, ".wikifetch-*")
	if err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	tmpName := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: dest, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: dest, Err: err}
	}
	// CreateTemp files are 0600; published documents should be world-readable.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: dest, Err: err}
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: dest, Err: err}
	}
	return nil
}
