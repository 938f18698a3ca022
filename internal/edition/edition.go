// Package edition enumerates the supported Wikipedia language editions and
// maps them to dataset configuration names.
package edition

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// snapshot is the wikimedia/wikipedia dump the dataset configs are pinned to.
const snapshot = "20231101"

// Edition identifies one Wikipedia language edition.
type Edition struct {
	Code string       // edition code as used in CLI flags ("simple", "en")
	Tag  language.Tag // underlying language
	name string       // override for editions that are not plain languages
}

var editions = map[string]Edition{
	"simple": {Code: "simple", Tag: language.English, name: "Simple English"},
	"en":     {Code: "en", Tag: language.English},
}

// Parse resolves an edition code. Unknown codes report the supported set.
func Parse(code string) (Edition, error) {
	ed, ok := editions[code]
	if !ok {
		return Edition{}, fmt.Errorf("unknown language edition %q (supported: %v)", code, Codes())
	}
	return ed, nil
}

// Codes returns the supported edition codes in stable order.
func Codes() []string {
	codes := make([]string, 0, len(editions))
	for code := range editions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// DatasetConfig returns the datasets-server config name for this edition,
// e.g. "20231101.simple".
func (e Edition) DatasetConfig() string {
	return snapshot + "." + e.Code
}

// DisplayName returns a human-readable edition name for logs and reports.
func (e Edition) DisplayName() string {
	if e.name != "" {
		return e.name
	}
	return display.English.Languages().Name(e.Tag)
}
