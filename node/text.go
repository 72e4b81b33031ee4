package node

// Text represents a run of character data. Adjacent text nodes merge
// on AddChild, so one Text node carries the whole logical run.
type Text struct {
	treeNode
	content []byte
}

var _ Node = (*Text)(nil)

func NewText(content []byte) *Text {
	return &Text{
		content: content,
	}
}

func (Text) Type() NodeType {
	return TextNodeType
}

func (n *Text) LocalName() string {
	return "#text"
}

func (n *Text) Content(dst []byte) []byte {
	return append(dst, n.content...)
}

func (n *Text) AddChild(child Node) error {
	// text nodes concatenate with other text nodes
	if child.Type() == TextNodeType {
		return n.AddContent(child.Content(nil))
	}
	return ErrInvalidOperation
}

func (n *Text) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *Text) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}

func (n *Text) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *Text) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *Text) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}
