package htmltag

// HTML5 is the default classification table. Callers that need
// additional tags should Clone it first; the package-level table is
// shared.
//
// Block here drives output formatting only: structural containers
// that read better on their own line. Elements that hold running
// text directly (p, headings, pre) are deliberately absent so that
// pretty-printing never injects whitespace next to their content.
// The root html element is also absent; the doctype line already
// separates it.
var HTML5 = newHTML5()

func newHTML5() *Table {
	t := New()

	t.Add(Void,
		"area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr",
	)

	t.Add(Block,
		"article", "aside", "blockquote", "body", "caption", "col",
		"colgroup", "dd", "details", "dialog", "div", "dl", "dt",
		"fieldset", "figcaption", "figure", "footer", "form", "frame",
		"frameset", "head", "header", "hgroup", "hr", "li", "link",
		"main", "menu", "meta", "nav", "noframes", "ol", "script",
		"section", "style", "table", "tbody", "td", "tfoot", "th",
		"thead", "title", "tr", "ul",
	)

	t.Add(RawText,
		"iframe", "noembed", "noframes", "noscript", "plaintext",
		"script", "style", "xmp",
	)

	t.Add(RCDATA,
		"textarea", "title",
	)

	return t
}
