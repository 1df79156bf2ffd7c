package property

import (
	"strings"

	"github.com/zostay/go-ical/param"
)

// Field is anything that can be written out as a content line. Property is the
// general implementation. Specialized types, like date.Date, implement Field by
// generating their value from their own state.
type Field interface {
	// Name returns the uppercase property name.
	Name() string

	// Params returns the parameters in output order.
	Params() param.List

	// Value returns the unfolded value to write after the colon.
	Value() string
}

// Format writes out the field as a content line folded with
// DefaultFoldEncoding.
func Format(f Field) string {
	return FormatWith(f, DefaultFoldEncoding)
}

// FormatWith writes out the field as a content line folded with the given
// FoldEncoding. Every parameter value is written in double quotes, no matter
// how it was quoted when parsed.
func FormatWith(f Field, fe *FoldEncoding) string {
	var b strings.Builder
	b.WriteString(f.Name())
	for _, p := range f.Params() {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteString(`="`)
		b.WriteString(p.Value)
		b.WriteByte('"')
	}
	b.WriteByte(':')
	b.WriteString(f.Value())

	return fe.Fold(b.String())
}
