package node

// Document is the root of a document tree. A well-formed document has
// exactly one element child (the document element); comments and
// processing instructions may surround it.
type Document struct {
	treeNode
}

var _ Node = (*Document)(nil)

func NewDocument() *Document {
	doc := &Document{}
	doc.treeNode = treeNode{
		doc: doc,
	}
	return doc
}

func (d *Document) Type() NodeType {
	return DocumentNodeType
}

func (d *Document) LocalName() string {
	return "#document"
}

// CreateElement creates an element owned by this document.
func (d *Document) CreateElement(name string) *Element {
	e := NewElement(name)
	_ = e.SetOwnerDocument(d)
	return e
}

// CreateElementNS creates a namespaced element owned by this document.
// The prefix may be empty for default-namespace elements.
func (d *Document) CreateElementNS(name, prefix, uri string) *Element {
	e := d.CreateElement(name)
	e.SetNamespace(prefix, uri)
	return e
}

func (d *Document) CreateText(content []byte) *Text {
	t := NewText(content)
	_ = t.SetOwnerDocument(d)
	return t
}

func (d *Document) CreateCDATASection(content []byte) *CDATASection {
	c := NewCDATASection(content)
	_ = c.SetOwnerDocument(d)
	return c
}

func (d *Document) CreateComment(content []byte) *Comment {
	c := NewComment(content)
	_ = c.SetOwnerDocument(d)
	return c
}

func (d *Document) CreatePI(target, data string) *ProcessingInstruction {
	pi := NewProcessingInstruction(target, data)
	_ = pi.SetOwnerDocument(d)
	return pi
}

// DocumentElement returns the document's element child, or nil when
// the document has none.
func (d *Document) DocumentElement() *Element {
	for e := d.firstChild; e != nil; e = e.NextSibling() {
		if e.Type() == ElementNodeType {
			return e.(*Element)
		}
	}
	return nil
}

// SetDocumentElement installs root as the document element, replacing
// a previous one if present.
func (d *Document) SetDocumentElement(root Node) error {
	if root == nil || root.Type() != ElementNodeType {
		return ErrInvalidOperation
	}

	_ = root.SetParent(d)
	var old Node
	for old = d.firstChild; old != nil; old = old.NextSibling() {
		if old.Type() == ElementNodeType {
			break
		}
	}

	if old == nil {
		return d.AddChild(root)
	}
	return old.Replace(root)
}

func (d *Document) AddChild(cur Node) error {
	return addChild(d, cur)
}

func (d *Document) AddContent(b []byte) error {
	return addContent(d, b)
}

func (d *Document) AddSibling(n Node) error {
	return ErrInvalidOperation
}

func (d *Document) Replace(n Node) error {
	return ErrInvalidOperation
}

func (d *Document) SetNextSibling(sibling Node) error {
	return ErrInvalidOperation
}

func (d *Document) SetPrevSibling(sibling Node) error {
	return ErrInvalidOperation
}
