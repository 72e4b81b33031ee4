package holmium

import (
	"io"

	"github.com/holmium-go/holmium/htmltag"
)

// Classifier answers tag-category lookups for resolved tag names.
// htmltag.Table is the production implementation; tests may inject
// fakes.
type Classifier interface {
	Is(name string, cat htmltag.Category) bool
}

// EscapeFunc writes the entity-escaped form of s to w. The same
// function serves text content and attribute values.
type EscapeFunc func(w io.Writer, s []byte) error

// Serializer writes document trees as HTML text. The zero value is
// not usable; construct with New.
type Serializer struct {
	pretty     bool
	classifier Classifier
	escape     EscapeFunc
	namespaces map[string]string
	encoding   string
}
