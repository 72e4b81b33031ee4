// Package escape implements the entity escaping applied to text and
// attribute content during serialization.
package escape

import (
	"io"
	"unicode/utf8"
)

var (
	esc_amp  = []byte("&amp;")
	esc_lt   = []byte("&lt;")
	esc_gt   = []byte("&gt;")
	esc_quot = []byte("&quot;")
	esc_apos = []byte("&#39;") // HTML has no &apos; before HTML5, numeric form is safe everywhere
	esc_fffd = []byte("�") // Unicode replacement character
)

// Escape writes to w the entity-escaped form of s. Both quote
// characters are always escaped, since the same function serves text
// content and double-quoted attribute values. Non-ASCII runes pass
// through untouched; the output sink is assumed UTF-8-capable.
// Invalid UTF-8 is replaced with U+FFFD.
func Escape(w io.Writer, s []byte) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRune(s[i:])
		i += width
		switch r {
		case '&':
			esc = esc_amp
		case '<':
			esc = esc_lt
		case '>':
			esc = esc_gt
		case '"':
			esc = esc_quot
		case '\'':
			esc = esc_apos
		default:
			if r == utf8.RuneError && width == 1 {
				esc = esc_fffd
				break
			}
			continue
		}

		if _, err := w.Write(s[last : i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	if _, err := w.Write(s[last:]); err != nil {
		return err
	}
	return nil
}

// EscapeString is a convenience wrapper around Escape for string
// content.
func EscapeString(w io.Writer, s string) error {
	return Escape(w, []byte(s))
}
