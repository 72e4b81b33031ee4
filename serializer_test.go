package holmium_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holmium-go/holmium"
	"github.com/holmium-go/holmium/encoding"
	"github.com/holmium-go/holmium/escape"
	"github.com/holmium-go/holmium/htmltag"
	"github.com/holmium-go/holmium/node"
)

func dumpNode(t *testing.T, s *holmium.Serializer, n node.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.DumpNode(&buf, n))
	return buf.String()
}

func TestTextEscaping(t *testing.T) {
	doc := node.NewDocument()
	p := doc.CreateElement("p")
	require.NoError(t, p.AddContent([]byte(`Hello & "World"`)))

	out := dumpNode(t, holmium.New(), p)
	if !assert.Equal(t, `<p>Hello &amp; &quot;World&quot;</p>`, out, "text content is entity-escaped") {
		return
	}
}

func TestVoidElement(t *testing.T) {
	doc := node.NewDocument()

	t.Run("NoAttributes", func(t *testing.T) {
		br := doc.CreateElement("br")
		out := dumpNode(t, holmium.New(), br)
		assert.Equal(t, `<br>`, out, "void element has no closing tag")
	})

	t.Run("WithAttributes", func(t *testing.T) {
		img := doc.CreateElement("img")
		require.NoError(t, img.SetAttribute("src", "x.png"))
		require.NoError(t, img.SetAttribute("alt", "an image"))
		out := dumpNode(t, holmium.New(), img)
		assert.Equal(t, `<img src="x.png" alt="an image">`, out)
	})

	t.Run("BlockVoid", func(t *testing.T) {
		hr := doc.CreateElement("hr")
		out := dumpNode(t, holmium.New(), hr)
		assert.Equal(t, "\n<hr>\n", out, "block-level void element gets surrounding newlines")
	})

	t.Run("ForeignSpelling", func(t *testing.T) {
		// a foreign element spelled like a void tag keeps its
		// closing tag: the lookup runs on the qualified name
		br := doc.CreateElementNS("br", "v", "")
		out := dumpNode(t, holmium.New(), br)
		assert.Equal(t, `<v:br></v:br>`, out)
	})
}

func TestRawTextContent(t *testing.T) {
	doc := node.NewDocument()
	compact := holmium.New(holmium.WithPrettyPrint(false))

	t.Run("Script", func(t *testing.T) {
		script := doc.CreateElement("script")
		require.NoError(t, script.AddContent([]byte(`if (a < b) {}`)))
		out := dumpNode(t, compact, script)
		assert.Equal(t, `<script>if (a < b) {}</script>`, out, "raw-text content is never escaped")
	})

	t.Run("Style", func(t *testing.T) {
		style := doc.CreateElement("style")
		require.NoError(t, style.AddContent([]byte(`a > b { color: "red" }`)))
		out := dumpNode(t, compact, style)
		assert.Equal(t, `<style>a > b { color: "red" }</style>`, out)
	})

	t.Run("RCDATA", func(t *testing.T) {
		ta := doc.CreateElement("textarea")
		require.NoError(t, ta.AddContent([]byte(`1 < 2 && 3`)))
		out := dumpNode(t, compact, ta)
		assert.Equal(t, `<textarea>1 < 2 && 3</textarea>`, out)
	})
}

func TestComment(t *testing.T) {
	doc := node.NewDocument()
	c := doc.CreateComment([]byte(" note "))
	out := dumpNode(t, holmium.New(), c)
	assert.Equal(t, `<!-- note -->`, out, "comment content is written verbatim")
}

func TestCDATASection(t *testing.T) {
	doc := node.NewDocument()
	cd := doc.CreateCDATASection([]byte("x < y & z"))
	out := dumpNode(t, holmium.New(), cd)
	assert.Equal(t, `<![CDATA[x < y & z]]>`, out)
}

func TestProcessingInstruction(t *testing.T) {
	doc := node.NewDocument()

	pi := doc.CreatePI("xml-stylesheet", `href="a.css"`)
	out := dumpNode(t, holmium.New(), pi)
	assert.Equal(t, `<?xml-stylesheet href="a.css"?>`, out)

	empty := doc.CreatePI("target", "")
	out = dumpNode(t, holmium.New(), empty)
	assert.Equal(t, `<?target?>`, out)
}

func TestUnsupportedNodeKind(t *testing.T) {
	doc := node.NewDocument()
	e := doc.CreateElement("a")
	require.NoError(t, e.SetAttribute("href", "x"))

	// a bare attribute node has no serialized form of its own; the
	// dispatcher degrades to the placeholder instead of failing
	out := dumpNode(t, holmium.New(), e.Attribute("href"))
	assert.Equal(t, `<!-- unsupported node -->`, out)
}

func TestFullDocument(t *testing.T) {
	doc := node.NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, doc.SetDocumentElement(html))
	require.NoError(t, html.AddChild(doc.CreateElement("head")))
	require.NoError(t, html.AddChild(doc.CreateElement("body")))

	var buf bytes.Buffer
	require.NoError(t, holmium.New().DumpDoc(&buf, doc))

	const expected = "<!DOCTYPE html>\n<html>\n<head></head>\n<body></body></html>\n"
	if !assert.Equal(t, expected, buf.String(), "document starts with the doctype and ends with a newline") {
		return
	}

	t.Run("ViaDumpNode", func(t *testing.T) {
		// handing the document to the generic entry point takes the
		// same doctype path
		out := dumpNode(t, holmium.New(), doc)
		assert.Equal(t, expected, out)
	})
}

func TestDocumentWithoutRoot(t *testing.T) {
	doc := node.NewDocument()
	require.NoError(t, doc.AddChild(doc.CreateComment([]byte("lonely"))))

	var buf bytes.Buffer
	err := holmium.New().DumpDoc(&buf, doc)
	assert.ErrorIs(t, err, holmium.ErrNoDocumentElement)
}

func TestNilNode(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, holmium.New().DumpNode(&buf, nil), holmium.ErrNilNode)
	assert.ErrorIs(t, holmium.New().DumpDoc(&buf, nil), holmium.ErrNilNode)
	assert.ErrorIs(t, holmium.New().DumpList(&buf, []node.Node{nil}), holmium.ErrNilNode)
}

func TestDumpList(t *testing.T) {
	doc := node.NewDocument()
	nodes := []node.Node{
		doc.CreateText([]byte("before ")),
		doc.CreateElement("span"),
		doc.CreateComment([]byte("after")),
	}

	var buf bytes.Buffer
	require.NoError(t, holmium.New().DumpList(&buf, nodes))
	assert.Equal(t, `before <span></span><!--after-->`, buf.String(), "fragment mode has no doctype")
}

func TestNamespaceNaming(t *testing.T) {
	doc := node.NewDocument()

	t.Run("LocalNamespace", func(t *testing.T) {
		circle := doc.CreateElementNS("circle", "svg", holmium.SVGNamespace)
		out := dumpNode(t, holmium.New(), circle)
		assert.Equal(t, `<circle></circle>`, out, "local-namespace elements drop the prefix")
	})

	t.Run("ForeignNamespace", func(t *testing.T) {
		custom := doc.CreateElementNS("widget", "app", "urn:example:app")
		out := dumpNode(t, holmium.New(), custom)
		assert.Equal(t, `<app:widget></app:widget>`, out, "foreign elements keep the qualified name on both tags")
	})

	t.Run("CustomTable", func(t *testing.T) {
		s := holmium.New(holmium.WithNamespaces(map[string]string{
			"urn:example:app": "app",
		}))
		custom := doc.CreateElementNS("widget", "app", "urn:example:app")
		out := dumpNode(t, s, custom)
		assert.Equal(t, `<widget></widget>`, out)
	})
}

func TestAttributes(t *testing.T) {
	doc := node.NewDocument()
	a := doc.CreateElement("a")
	require.NoError(t, a.SetAttribute("href", `/?q=a&b`))
	require.NoError(t, a.SetAttribute("title", `say "hi"`))
	require.NoError(t, a.SetAttribute("data-x", ""))

	out := dumpNode(t, holmium.New(), a)
	assert.Equal(t,
		`<a href="/?q=a&amp;b" title="say &quot;hi&quot;" data-x=""></a>`,
		out,
		"attributes keep insertion order, stay double-quoted, and escape their values")
}

func TestPrettyPrint(t *testing.T) {
	doc := node.NewDocument()
	div := doc.CreateElement("div")
	require.NoError(t, div.AddContent([]byte("x")))

	t.Run("Enabled", func(t *testing.T) {
		out := dumpNode(t, holmium.New(), div)
		assert.Equal(t, "\n<div>x</div>", out)
	})

	t.Run("Disabled", func(t *testing.T) {
		out := dumpNode(t, holmium.New(holmium.WithPrettyPrint(false)), div)
		assert.Equal(t, "<div>x</div>", out)
	})
}

type fakeClassifier struct {
	void map[string]bool
}

func (f fakeClassifier) Is(name string, cat htmltag.Category) bool {
	return cat == htmltag.Void && f.void[name]
}

func TestClassifierInjection(t *testing.T) {
	doc := node.NewDocument()
	s := holmium.New(holmium.WithClassifier(fakeClassifier{void: map[string]bool{"x": true}}))

	out := dumpNode(t, s, doc.CreateElement("x"))
	assert.Equal(t, `<x>`, out, "injected classifier decides voidness")

	out = dumpNode(t, s, doc.CreateElement("br"))
	assert.Equal(t, `<br></br>`, out, "default tables are fully replaced")
}

func TestEscaperInvokedOncePerUnit(t *testing.T) {
	doc := node.NewDocument()
	p := doc.CreateElement("p")
	require.NoError(t, p.SetAttribute("title", "a & b"))
	require.NoError(t, p.AddContent([]byte("c & d")))

	var calls int
	s := holmium.New(holmium.WithEscaper(func(w io.Writer, b []byte) error {
		calls++
		return escape.Escape(w, b)
	}))

	out := dumpNode(t, s, p)
	assert.Equal(t, `<p title="a &amp; b">c &amp; d</p>`, out)
	assert.Equal(t, 2, calls, "escaping runs exactly once per text/attribute unit")
}

type failWriter struct {
	limit int
}

func (w *failWriter) Write(b []byte) (int, error) {
	if w.limit -= len(b); w.limit < 0 {
		return 0, errors.New("sink full")
	}
	return len(b), nil
}

func TestWriteFailurePropagates(t *testing.T) {
	doc := node.NewDocument()
	div := doc.CreateElement("div")
	require.NoError(t, div.AddContent([]byte(strings.Repeat("x", 64))))

	err := holmium.New().DumpNode(&failWriter{limit: 8}, div)
	if !assert.Error(t, err, "sink write failure aborts the pass") {
		return
	}
	assert.Contains(t, err.Error(), "sink full")
}

func TestOutputEncoding(t *testing.T) {
	doc := node.NewDocument()
	span := doc.CreateElement("span")
	require.NoError(t, span.AddContent([]byte("café")))

	t.Run("Latin1", func(t *testing.T) {
		var buf bytes.Buffer
		s := holmium.New(holmium.WithEncoding("iso-8859-1"))
		require.NoError(t, s.DumpNode(&buf, span))
		assert.Equal(t, []byte("<span>caf\xe9</span>"), buf.Bytes())
	})

	t.Run("Unknown", func(t *testing.T) {
		var buf bytes.Buffer
		s := holmium.New(holmium.WithEncoding("klingon"))
		err := s.DumpNode(&buf, span)
		assert.ErrorIs(t, err, encoding.ErrUnsupportedEncoding)
	})
}

func TestConvenienceHelpers(t *testing.T) {
	doc := node.NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, doc.SetDocumentElement(html))

	str, err := holmium.DocString(doc)
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE html>\n<html></html>\n", str)

	str, err = holmium.NodeString(doc.CreateElement("em"))
	require.NoError(t, err)
	assert.Equal(t, "<em></em>", str)
}
