package node

import (
	"errors"

	"github.com/holmium-go/holmium/internal/orderedmap"
)

var ErrDuplicateAttribute = errors.New("duplicate attribute")

// Element is an element node. The name field holds the local name;
// the qualified name is derived from the namespace prefix, if any.
type Element struct {
	treeNode
	name  string
	attrs *orderedmap.Map[string, *Attribute]
	ns    *Namespace
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element with the given local name. Please
// note that elements created this way are orphan nodes. You normally
// want to create an element using the Document.CreateElement method,
// which will automatically set the owner document for the element.
func NewElement(name string) *Element {
	return &Element{
		name:  name,
		attrs: orderedmap.New[string, *Attribute](),
	}
}

func (Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

// Name returns the qualified name of the element as stored in the
// tree: prefix:local when the element carries a prefixed namespace,
// the bare local name otherwise.
func (e *Element) Name() string {
	if e.ns == nil || e.ns.Prefix() == "" {
		return e.name
	}
	return e.ns.Prefix() + ":" + e.name
}

func (e *Element) Prefix() string {
	if e.ns == nil {
		return ""
	}
	return e.ns.Prefix()
}

func (e *Element) URI() string {
	if e.ns == nil {
		return ""
	}
	return e.ns.URI()
}

// SetNamespace associates the element with a namespace. The prefix
// may be empty for default-namespace elements.
func (e *Element) SetNamespace(prefix, uri string) {
	e.ns = NewNamespace(prefix, uri)
}

// SetAttribute appends an attribute with the given name and value.
// Attribute names are unique within one element; setting a name that
// already exists returns ErrDuplicateAttribute.
func (e *Element) SetAttribute(name, value string) error {
	attr := newAttribute(name, value, nil)
	if e.doc != nil {
		_ = attr.SetOwnerDocument(e.doc)
	}
	if err := e.attrs.Set(name, attr); err != nil {
		return ErrDuplicateAttribute
	}
	return nil
}

// Attribute returns the attribute with the given name, or nil.
func (e *Element) Attribute(name string) *Attribute {
	attr, ok := e.attrs.Get(name)
	if !ok {
		return nil
	}
	return attr
}

// Attributes populates the given slice with the attributes of the
// element in insertion order. If the slice is nil, a new slice is
// allocated. An element without attributes yields an empty slice.
func (e *Element) Attributes(dst []*Attribute) []*Attribute {
	if dst == nil {
		dst = make([]*Attribute, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for _, attr := range e.attrs.Range() {
		dst = append(dst, attr)
	}
	return dst
}

func (e *Element) AddChild(child Node) error {
	return addChild(e, child)
}

func (e *Element) AddContent(b []byte) error {
	return addContent(e, b)
}

func (e *Element) AddSibling(sibling Node) error {
	return addSibling(e, sibling)
}

func (e *Element) Replace(cur Node) error {
	return replaceNode(e, cur)
}

func (e *Element) SetNextSibling(sibling Node) error {
	return setNextSibling(e, sibling)
}

func (e *Element) SetPrevSibling(sibling Node) error {
	return setPrevSibling(e, sibling)
}
