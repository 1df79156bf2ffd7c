// Package charset decodes calendar documents that were not written in UTF-8.
// RFC 2445 defaults to UTF-8, but files exported by older tools turn up in
// ISO-8859-1, windows-1252, and worse. This loads all the encodings provided
// with:
//
// * golang.org/x/text/encoding/ianaindex
package charset

import (
	"errors"
	"fmt"
	"strings"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// UTF8 is the default charset, which needs no decoding.
const UTF8 = "utf-8"

// ErrUnknownCharset is returned by Decode when the charset has no decoder.
var ErrUnknownCharset = errors.New("unknown charset")

func isUTF8(name string) bool {
	return name == "" || strings.EqualFold(name, UTF8) || strings.EqualFold(name, "utf8")
}

// Decode converts b from the named charset into a UTF-8 string. An empty
// charset or any spelling of UTF-8 returns b unchanged.
func Decode(name string, b []byte) (string, error) {
	if isUTF8(name) {
		return string(b), nil
	}

	enc, err := ianaindex.MIME.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w %q", ErrUnknownCharset, name)
	}

	s, err := enc.NewDecoder().String(string(b))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}

	return s, nil
}
