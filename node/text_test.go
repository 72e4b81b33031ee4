package node_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holmium-go/holmium/node"
)

func TestText(t *testing.T) {
	t.Run("MergeAdjacent", func(t *testing.T) {
		a := node.NewText([]byte("foo"))
		b := node.NewText([]byte("bar"))

		require.NoError(t, a.AddChild(b), "text nodes concatenate")
		require.Equal(t, "foobar", string(a.Content(nil)))
		require.Nil(t, a.FirstChild(), "merging does not create children")
	})

	t.Run("RejectNonText", func(t *testing.T) {
		a := node.NewText([]byte("foo"))
		require.ErrorIs(t, a.AddChild(node.NewComment(nil)), node.ErrInvalidOperation)
	})

	t.Run("ContentAppend", func(t *testing.T) {
		a := node.NewText([]byte("foo"))
		dst := []byte("pre:")
		require.Equal(t, "pre:foo", string(a.Content(dst)))
	})
}
