// Package xnethtml projects trees parsed by golang.org/x/net/html
// into this module's node types. Parsing stays the parser's business;
// this package only translates the finished tree.
package xnethtml

import (
	"io"

	"golang.org/x/net/html"

	"github.com/holmium-go/holmium"
	"github.com/holmium-go/holmium/node"
)

// Parse reads HTML from r and returns the equivalent document tree.
// Doctype nodes are dropped; the serializer emits its own doctype.
func Parse(r io.Reader) (*node.Document, error) {
	src, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	doc := node.NewDocument()
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		converted := Convert(doc, c)
		if converted == nil {
			continue
		}
		if err := doc.AddChild(converted); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Convert translates a single parsed node (and its subtree) into a
// node owned by doc. Node kinds with no equivalent, such as doctype
// nodes, convert to nil.
func Convert(doc *node.Document, src *html.Node) node.Node {
	switch src.Type {
	case html.ElementNode:
		e := convertElement(doc, src)
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if converted := Convert(doc, c); converted != nil {
				_ = e.AddChild(converted)
			}
		}
		return e
	case html.TextNode:
		return doc.CreateText([]byte(src.Data))
	case html.CommentNode:
		return doc.CreateComment([]byte(src.Data))
	default:
		return nil
	}
}

func convertElement(doc *node.Document, src *html.Node) *node.Element {
	var e *node.Element
	switch src.Namespace {
	case "":
		e = doc.CreateElementNS(src.Data, "", holmium.HTMLNamespace)
	case "svg":
		e = doc.CreateElementNS(src.Data, "", holmium.SVGNamespace)
	case "math":
		e = doc.CreateElementNS(src.Data, "", holmium.MathMLNamespace)
	default:
		// unknown vocabulary: keep the parser's short name as the
		// prefix so the qualified name survives
		e = doc.CreateElementNS(src.Data, src.Namespace, "")
	}

	for _, attr := range src.Attr {
		name := attr.Key
		if attr.Namespace != "" {
			name = attr.Namespace + ":" + attr.Key
		}
		// the parser guarantees unique attribute names per element
		_ = e.SetAttribute(name, attr.Val)
	}
	return e
}
