package node

// ProcessingInstruction represents a processing instruction node
type ProcessingInstruction struct {
	treeNode
	target string
	data   string
}

var _ Node = (*ProcessingInstruction)(nil)

func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{
		target: target,
		data:   data,
	}
}

func (*ProcessingInstruction) Type() NodeType {
	return ProcessingInstructionNodeType
}

func (pi *ProcessingInstruction) LocalName() string {
	return pi.target
}

func (pi *ProcessingInstruction) Target() string {
	return pi.target
}

func (pi *ProcessingInstruction) Data() string {
	return pi.data
}

func (pi *ProcessingInstruction) Content(dst []byte) []byte {
	return append(dst, pi.data...)
}

func (pi *ProcessingInstruction) AddChild(cur Node) error {
	return ErrInvalidOperation
}

func (pi *ProcessingInstruction) AddContent(b []byte) error {
	pi.data += string(b)
	return nil
}

func (pi *ProcessingInstruction) AddSibling(cur Node) error {
	return addSibling(pi, cur)
}

func (pi *ProcessingInstruction) Replace(cur Node) error {
	return replaceNode(pi, cur)
}

func (pi *ProcessingInstruction) SetNextSibling(sibling Node) error {
	return setNextSibling(pi, sibling)
}

func (pi *ProcessingInstruction) SetPrevSibling(sibling Node) error {
	return setPrevSibling(pi, sibling)
}
