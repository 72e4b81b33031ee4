package node

// CDATASection is a character-data section. Its content is emitted
// literally, wrapped in the CDATA markers, with no escaping.
type CDATASection struct {
	treeNode
	content []byte
}

var _ Node = (*CDATASection)(nil)

func NewCDATASection(content []byte) *CDATASection {
	return &CDATASection{
		content: content,
	}
}

func (CDATASection) Type() NodeType {
	return CDATASectionNodeType
}

func (n *CDATASection) LocalName() string {
	return "#cdata-section"
}

func (n *CDATASection) Content(dst []byte) []byte {
	return append(dst, n.content...)
}

func (n *CDATASection) AddChild(child Node) error {
	if child.Type() == CDATASectionNodeType {
		return n.AddContent(child.Content(nil))
	}
	return ErrInvalidOperation
}

func (n *CDATASection) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *CDATASection) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}

func (n *CDATASection) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *CDATASection) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *CDATASection) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}
