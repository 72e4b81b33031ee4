package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holmium-go/holmium/encoding"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"", "utf8", "UTF-8", "iso-8859-1", "shift_jis", "euc-kr", "windows-1251"} {
		assert.NotNil(t, encoding.Load(name), "Load(%q)", name)
	}
	assert.Nil(t, encoding.Load("klingon"))
}

func TestNewWriter(t *testing.T) {
	t.Run("UTF8Identity", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := encoding.NewWriter(&buf, "utf-8")
		require.NoError(t, err)
		assert.Equal(t, io.Writer(&buf), w, "UTF-8 output needs no wrapping")
	})

	t.Run("Latin1", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := encoding.NewWriter(&buf, "iso-8859-1")
		require.NoError(t, err)

		_, err = io.WriteString(w, "café")
		require.NoError(t, err)
		if c, ok := w.(io.Closer); ok {
			require.NoError(t, c.Close())
		}
		assert.Equal(t, []byte("caf\xe9"), buf.Bytes())
	})

	t.Run("Unknown", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := encoding.NewWriter(&buf, "klingon")
		assert.ErrorIs(t, err, encoding.ErrUnsupportedEncoding)
	})
}
