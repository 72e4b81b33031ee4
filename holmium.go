// Package holmium serializes HTML document trees back into their
// textual form. It is the output half of a parse/serialize round
// trip: given a tree of typed nodes (see the node package), it
// produces well-formed markup that re-parses into an equivalent tree.
//
// The package performs a single synchronous depth-first pass over the
// tree. Element classification (void, block-level, raw-text, RCDATA)
// and entity escaping are injected collaborators with usable HTML5
// defaults.
package holmium

import (
	"bytes"

	"github.com/holmium-go/holmium/node"
)

const Version = "0.1.0"

// Canonical namespace URIs of the vocabularies treated as native to
// HTML output. Elements in one of these namespaces serialize under
// their local name; anything else keeps its qualified name.
const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	SVGNamespace    = "http://www.w3.org/2000/svg"
)

// DefaultNamespaces maps the local namespace URIs to a short
// vocabulary name. Only the presence of a URI matters to the
// serializer; the short name exists for diagnostics.
func DefaultNamespaces() map[string]string {
	return map[string]string{
		HTMLNamespace:   "html",
		MathMLNamespace: "math",
		SVGNamespace:    "svg",
	}
}

// DocString serializes doc with a default Serializer and returns the
// result as a string.
func DocString(doc *node.Document) (string, error) {
	var buf bytes.Buffer
	if err := New().DumpDoc(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NodeString serializes a single node in fragment mode with a default
// Serializer and returns the result as a string.
func NodeString(n node.Node) (string, error) {
	var buf bytes.Buffer
	if err := New().DumpNode(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
