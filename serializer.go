package holmium

import (
	"io"

	"github.com/lestrrat-go/pdebug"

	"github.com/holmium-go/holmium/encoding"
	"github.com/holmium-go/holmium/escape"
	"github.com/holmium-go/holmium/htmltag"
	"github.com/holmium-go/holmium/node"
)

const doctype = "<!DOCTYPE html>"

// unsupportedMarker is emitted in place of node kinds the serializer
// does not handle. Unknown kinds degrade to this marker instead of
// failing the pass.
const unsupportedMarker = "<!-- unsupported node -->"

// New creates a Serializer. Without options it pretty-prints, uses
// the HTML5 tag tables, the package escape function, and the
// HTML/MathML/SVG namespace table, and writes UTF-8.
func New(options ...Option) *Serializer {
	s := &Serializer{
		pretty:     true,
		classifier: htmltag.HTML5,
		escape:     escape.Escape,
		namespaces: DefaultNamespaces(),
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// writer wraps the output sink. Writes are append-only and strictly
// sequential; the first write error aborts the pass.
type writer struct {
	out io.Writer

	// set when the sink is wrapped in a charset encoder; Close
	// flushes the encoder state without closing the caller's sink
	flusher io.Closer
}

func (w *writer) writeString(content string) error {
	_, err := io.WriteString(w.out, content)
	return err
}

func (w *writer) write(content []byte) error {
	_, err := w.out.Write(content)
	return err
}

func (w *writer) newline() error {
	return w.writeString("\n")
}

func (w *writer) flush() error {
	if w.flusher == nil {
		return nil
	}
	return w.flusher.Close()
}

func (s *Serializer) newWriter(out io.Writer) (*writer, error) {
	w := &writer{out: out}
	if s.encoding != "" {
		wrapped, err := encoding.NewWriter(out, s.encoding)
		if err != nil {
			return nil, err
		}
		w.out = wrapped
		if c, ok := wrapped.(io.Closer); ok {
			w.flusher = c
		}
	}
	return w, nil
}

// DumpDoc serializes a full document: the doctype literal, a newline,
// the document's children in order, and a trailing newline. A
// document without an element child is ErrNoDocumentElement.
func (s *Serializer) DumpDoc(out io.Writer, doc *node.Document) error {
	if doc == nil {
		return ErrNilNode
	}
	w, err := s.newWriter(out)
	if err != nil {
		return err
	}
	if err := s.dumpDoc(w, doc); err != nil {
		return err
	}
	return w.flush()
}

// DumpList serializes a list of sibling nodes in order, with no
// doctype and no trailing newline.
func (s *Serializer) DumpList(out io.Writer, nodes []node.Node) error {
	w, err := s.newWriter(out)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if n == nil {
			return ErrNilNode
		}
		if err := s.dumpNode(w, n); err != nil {
			return err
		}
	}
	return w.flush()
}

// DumpNode serializes a single node. Handing it a Document is
// equivalent to DumpDoc; anything else is fragment mode.
func (s *Serializer) DumpNode(out io.Writer, n node.Node) error {
	if n == nil {
		return ErrNilNode
	}
	w, err := s.newWriter(out)
	if err != nil {
		return err
	}
	if err := s.dumpNode(w, n); err != nil {
		return err
	}
	return w.flush()
}

// dumpNode dispatches on the node kind. Every kind either serializes
// or degrades to the placeholder marker; the traversal itself never
// fails on a well-typed tree.
func (s *Serializer) dumpNode(w *writer, n node.Node) error {
	switch n.Type() {
	case node.DocumentNodeType:
		return s.dumpDoc(w, n.(*node.Document))
	case node.ElementNodeType:
		return s.dumpElement(w, n.(*node.Element))
	case node.TextNodeType:
		return s.dumpText(w, n)
	case node.CDATASectionNodeType:
		if err := w.writeString("<![CDATA["); err != nil {
			return err
		}
		if err := w.write(n.Content(nil)); err != nil {
			return err
		}
		return w.writeString("]]>")
	case node.CommentNodeType:
		if err := w.writeString("<!--"); err != nil {
			return err
		}
		if err := w.write(n.Content(nil)); err != nil {
			return err
		}
		return w.writeString("-->")
	case node.ProcessingInstructionNodeType:
		pi := n.(*node.ProcessingInstruction)
		if err := w.writeString("<?" + pi.Target()); err != nil {
			return err
		}
		if data := pi.Data(); data != "" {
			if err := w.writeString(" " + data); err != nil {
				return err
			}
		}
		return w.writeString("?>")
	default:
		if pdebug.Enabled {
			pdebug.Printf("dumpNode: unsupported node type %s", n.Type())
		}
		return w.writeString(unsupportedMarker)
	}
}

func (s *Serializer) dumpDoc(w *writer, doc *node.Document) error {
	if doc.DocumentElement() == nil {
		return ErrNoDocumentElement
	}

	if err := w.writeString(doctype); err != nil {
		return err
	}
	if err := w.newline(); err != nil {
		return err
	}
	for e := doc.FirstChild(); e != nil; e = e.NextSibling() {
		if err := s.dumpNode(w, e); err != nil {
			return err
		}
	}
	return w.newline()
}

// isLocal reports whether the element belongs to one of the local
// vocabularies (HTML, MathML, SVG by default).
func (s *Serializer) isLocal(e *node.Element) bool {
	uri := e.URI()
	if uri == "" {
		return false
	}
	_, ok := s.namespaces[uri]
	return ok
}

// displayName resolves the tag name used for the open tag, the close
// tag, and every category lookup. Local elements go by local name,
// foreign ones by their stored qualified name. Resolving once keeps
// the open and close tags from ever disagreeing.
func (s *Serializer) displayName(e *node.Element) string {
	if s.isLocal(e) {
		return e.LocalName()
	}
	return e.Name()
}

func (s *Serializer) dumpElement(w *writer, e *node.Element) error {
	name := s.displayName(e)
	if pdebug.Enabled {
		pdebug.Printf("dumpElement: <%s>", name)
	}

	block := s.pretty && s.classifier.Is(name, htmltag.Block)
	if block {
		if err := w.newline(); err != nil {
			return err
		}
	}

	if err := w.writeString("<" + name); err != nil {
		return err
	}
	if err := s.dumpAttributes(w, e); err != nil {
		return err
	}
	if err := w.writeString(">"); err != nil {
		return err
	}

	for child := e.FirstChild(); child != nil; child = child.NextSibling() {
		if err := s.dumpNode(w, child); err != nil {
			return err
		}
	}

	// Void elements are complete after the open tag. The check runs
	// against the resolved name so that a foreign element sharing a
	// local tag spelling is not misclassified.
	if s.classifier.Is(name, htmltag.Void) {
		if block {
			return w.newline()
		}
		return nil
	}

	return w.writeString("</" + name + ">")
}

func (s *Serializer) dumpAttributes(w *writer, e *node.Element) error {
	for _, attr := range e.Attributes(nil) {
		if err := w.writeString(" " + attr.Name() + `="`); err != nil {
			return err
		}
		if err := s.escape(w.out, []byte(attr.Value())); err != nil {
			return err
		}
		if err := w.writeString(`"`); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) dumpText(w *writer, n node.Node) error {
	content := n.Content(nil)

	// Text inside a raw-text or RCDATA container is written verbatim.
	// Escaping it would corrupt embedded script/style content on
	// re-parse.
	if parent, ok := n.Parent().(*node.Element); ok {
		pname := s.displayName(parent)
		if s.classifier.Is(pname, htmltag.RawText) || s.classifier.Is(pname, htmltag.RCDATA) {
			return w.write(content)
		}
	}

	return s.escape(w.out, content)
}
