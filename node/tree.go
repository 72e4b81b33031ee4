package node

import (
	"errors"
)

// treeNode is the part of a Node that handles the tree structure.
type treeNode struct {
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) Content(dst []byte) []byte {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		result = e.Content(result)
	}
	return result
}

func (n *treeNode) SetOwnerDocument(doc *Document) error {
	if doc == nil {
		return errors.New("cannot set nil document")
	}
	n.doc = doc
	return nil
}

func (n *treeNode) SetParent(p Node) error {
	if p == nil {
		return errors.New("cannot set nil parent")
	}
	n.parent = p
	return nil
}

func addSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot add sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot add nil sibling")
	}

	last := n
	lt := n.getTreeNode()
	st := sibling.getTreeNode()

	for lt.next != nil {
		last = lt.next
		lt = last.getTreeNode()
	}

	lt.next = sibling
	st.prev = last
	if lt.parent != nil {
		st.parent = lt.parent
		lt.parent.getTreeNode().lastChild = sibling
	}
	return nil
}

func addChild(parent, child Node) error {
	pt := parent.getTreeNode()
	ct := child.getTreeNode()

	last := pt.lastChild
	if last == nil { // no children yet
		pt.firstChild = child
		pt.lastChild = child
		ct.parent = parent
		return nil
	}

	// addSibling handles setting the parent and the lastChild pointer
	return addSibling(last, child)
}

func addContent(n Node, content []byte) error {
	return n.AddChild(NewText(content))
}

func replaceNode(n Node, cur Node) error {
	if next := n.NextSibling(); next != nil {
		cur.getTreeNode().next = next
		next.getTreeNode().prev = cur
	}

	if prev := n.PrevSibling(); prev != nil {
		cur.getTreeNode().prev = prev
		prev.getTreeNode().next = cur
	}

	if parent := n.Parent(); parent != nil {
		if parent.FirstChild() == n {
			parent.getTreeNode().firstChild = cur
		}
		if parent.LastChild() == n {
			parent.getTreeNode().lastChild = cur
		}
		cur.getTreeNode().parent = parent
	}
	return nil
}

func setNextSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot set next sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot set nil sibling")
	}

	n.getTreeNode().next = sibling
	sibling.getTreeNode().prev = n

	if parent := n.Parent(); parent != nil {
		sibling.getTreeNode().parent = parent
		if parent.getTreeNode().lastChild == n {
			parent.getTreeNode().lastChild = sibling
		}
	}
	return nil
}

func setPrevSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot set previous sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot set nil sibling")
	}

	n.getTreeNode().prev = sibling
	sibling.getTreeNode().next = n

	if parent := n.Parent(); parent != nil {
		sibling.getTreeNode().parent = parent
		if parent.getTreeNode().firstChild == n {
			parent.getTreeNode().firstChild = sibling
		}
	}
	return nil
}
