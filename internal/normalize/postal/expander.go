// Package postal provides a libpostal-backed abbreviation expander.
// It links against the libpostal C library through gopostal, so it
// lives in its own package: binaries that cannot carry the cgo
// dependency simply do not import it and use the table-driven expander
// instead.
package postal

import (
	"strings"

	expand "github.com/openvenues/gopostal/expand"
	parser "github.com/openvenues/gopostal/parser"
)

// Expander expands address abbreviations using libpostal's trained
// expansion model. Implements normalize.Expander.
type Expander struct{}

// New returns a libpostal expander. The underlying library loads its
// data on first use.
func New() *Expander {
	return &Expander{}
}

// Expand returns the first libpostal expansion of the text, or the
// input unchanged when libpostal produces nothing.
func (e *Expander) Expand(text string) string {
	expansions := expand.ExpandAddress(text)
	if len(expansions) == 0 {
		return text
	}
	return expansions[0]
}

// ParseCity runs libpostal's address parser and returns the city
// component, or "" when none is labelled.
func ParseCity(text string) string {
	for _, component := range parser.ParseAddress(text) {
		if component.Label == "city" {
			return strings.ToLower(component.Value)
		}
	}
	return ""
}
