// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from the rest of the module
package encoding

import (
	"errors"
	"io"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return unicode.UTF8
	case "euc-jp":
		return japanese.EUCJP
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "iso-2022-jp":
		return japanese.ISO2022JP
	case "big5":
		return traditionalchinese.Big5
	case "euc-kr":
		return korean.EUCKR
	case "gbk":
		return simplifiedchinese.GBK
	case "iso-8859-1", "latin1", "windows-1252":
		return charmap.Windows1252
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-5":
		return charmap.ISO8859_5
	case "iso-8859-7":
		return charmap.ISO8859_7
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "koi8-r", "koi8r":
		return charmap.KOI8R
	case "windows-1250":
		return charmap.Windows1250
	case "windows-1251":
		return charmap.Windows1251
	}
	return nil
}

// NewWriter wraps w so that UTF-8 text written to the result comes
// out in the named encoding. The UTF-8 names return w unchanged.
func NewWriter(w io.Writer, name string) (io.Writer, error) {
	e := Load(name)
	if e == nil {
		return nil, ErrUnsupportedEncoding
	}
	if e == unicode.UTF8 {
		return w, nil
	}
	return e.NewEncoder().Writer(w), nil
}
