package holmium

import "errors"

var (
	// ErrNilNode is returned when a dump entry point receives a nil
	// node.
	ErrNilNode = errors.New("nil node")

	// ErrNoDocumentElement is returned when a document has no element
	// child. The serializer does not synthesize a root.
	ErrNoDocumentElement = errors.New("document has no document element")
)
