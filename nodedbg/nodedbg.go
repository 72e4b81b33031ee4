// Package nodedbg renders document trees as indented ASCII art for
// debugging and for the CLI --tree flag.
package nodedbg

import (
	"fmt"

	tp "github.com/xlab/treeprint"

	"github.com/holmium-go/holmium/node"
)

// Sprint returns a printable rendering of the tree rooted at n.
func Sprint(n node.Node) string {
	p := tp.New()
	walk(p, n)
	return p.String()
}

func walk(p tp.Tree, n node.Node) {
	if n == nil {
		return
	}
	if n.FirstChild() == nil {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		walk(branch, c)
	}
}

func label(n node.Node) string {
	switch n.Type() {
	case node.ElementNodeType:
		e := n.(*node.Element)
		attrs := e.Attributes(nil)
		if len(attrs) == 0 {
			return fmt.Sprintf("<%s>", e.Name())
		}
		return fmt.Sprintf("<%s> (%d attrs)", e.Name(), len(attrs))
	case node.TextNodeType:
		return fmt.Sprintf("%q", string(n.Content(nil)))
	case node.ProcessingInstructionNodeType:
		pi := n.(*node.ProcessingInstruction)
		return fmt.Sprintf("?%s", pi.Target())
	default:
		return n.Type().String()
	}
}
