package node

// Attribute is a name/value pair attached to an element. The value is
// stored in its unescaped form; escaping happens at serialization
// time.
type Attribute struct {
	treeNode
	name  string
	value string
	ns    *Namespace
}

var _ Node = (*Attribute)(nil)

func newAttribute(name, value string, ns *Namespace) *Attribute {
	return &Attribute{
		name:  name,
		value: value,
		ns:    ns,
	}
}

func (Attribute) Type() NodeType {
	return AttributeNodeType
}

// Name returns the attribute name as stored, including the namespace
// prefix when present.
func (n *Attribute) Name() string {
	if n.ns == nil || n.ns.Prefix() == "" {
		return n.name
	}
	return n.ns.Prefix() + ":" + n.name
}

func (n *Attribute) LocalName() string {
	return n.name
}

func (n *Attribute) Value() string {
	return n.value
}

func (n *Attribute) Prefix() string {
	if n.ns == nil {
		return ""
	}
	return n.ns.Prefix()
}

func (n *Attribute) URI() string {
	if n.ns == nil {
		return ""
	}
	return n.ns.URI()
}

func (n *Attribute) Content(dst []byte) []byte {
	return append(dst, n.value...)
}

func (n *Attribute) AddChild(cur Node) error {
	return ErrInvalidOperation
}

func (n *Attribute) AddContent(b []byte) error {
	n.value += string(b)
	return nil
}

func (n *Attribute) AddSibling(cur Node) error {
	return addSibling(n, cur)
}

func (n *Attribute) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *Attribute) SetNextSibling(sibling Node) error {
	return setNextSibling(n, sibling)
}

func (n *Attribute) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n, sibling)
}
