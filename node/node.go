package node

import (
	"errors"
)

// NodeType represents the type of a node in the document tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	AttributeNodeType
	TextNodeType
	CDATASectionNodeType
	CommentNodeType
	ProcessingInstructionNodeType
	DocumentNodeType
)

func (t NodeType) String() string {
	switch t {
	case ElementNodeType:
		return "element"
	case AttributeNodeType:
		return "attribute"
	case TextNodeType:
		return "text"
	case CDATASectionNodeType:
		return "cdata-section"
	case CommentNodeType:
		return "comment"
	case ProcessingInstructionNodeType:
		return "processing-instruction"
	case DocumentNodeType:
		return "document"
	default:
		return "unknown"
	}
}

var ErrInvalidOperation = errors.New("invalid operation")

// Node interface defines the common functionality for all node types
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	AddChild(Node) error
	AddContent([]byte) error
	AddSibling(Node) error

	Type() NodeType

	// Content appends the textual content of the node to the provided
	// byte slice and returns the result. If dst is nil, a new slice is
	// allocated.
	Content(dst []byte) []byte

	FirstChild() Node
	LastChild() Node

	// LocalName returns the local name of the node.
	LocalName() string

	NextSibling() Node
	OwnerDocument() *Document
	Parent() Node
	PrevSibling() Node

	Replace(Node) error

	SetNextSibling(Node) error
	SetOwnerDocument(doc *Document) error
	SetParent(Node) error
	SetPrevSibling(Node) error
}
