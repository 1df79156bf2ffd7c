package property

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	DefaultFoldIndent = " " // indent placed before folded lines
	LineLength        = 75  // maximum octets per physical line, not counting the break
	MinLineLength     = 5   // room for the indent plus the longest UTF-8 sequence
)

// DefaultFoldEncoding folds at LineLength octets using CRLF, as RFC 2445
// requires. This is the recommended FoldEncoding.
var DefaultFoldEncoding = &FoldEncoding{
	DefaultFoldIndent,
	LineLength,
	CRLF,
}

var (
	// ErrFoldIndent is returned by NewFoldEncoding when the fold indent is not a
	// single space or tab. Unfolding removes exactly one whitespace character,
	// so nothing else could be undone.
	ErrFoldIndent = errors.New("fold indent must be a single space or tab")

	// ErrLineLengthTooShort is returned by NewFoldEncoding when the line length
	// is less than MinLineLength.
	ErrLineLengthTooShort = errors.New("fold line length is too short")

	// ErrBadBreak is returned by NewFoldEncoding when the line break is not one
	// of CRLF, LF, or CR.
	ErrBadBreak = errors.New("fold line break must be CRLF, LF, or CR")
)

// FoldEncoding provides the tooling for folding content lines.
type FoldEncoding struct {
	foldIndent string
	lineLength int
	lb         Break
}

// NewFoldEncoding creates a new FoldEncoding with the given settings. The
// foldIndent must be a single space or tab character. The lineLength is the
// maximum number of octets on any physical line, not counting the line break
// and counting the indent of continuation lines.
func NewFoldEncoding(foldIndent string, lineLength int, lb Break) (*FoldEncoding, error) {
	if len(foldIndent) != 1 || !isSpace(rune(foldIndent[0])) {
		return nil, ErrFoldIndent
	}

	if lineLength < MinLineLength {
		return nil, ErrLineLengthTooShort
	}

	if !lb.valid() {
		return nil, ErrBadBreak
	}

	return &FoldEncoding{foldIndent, lineLength, lb}, nil
}

// Break returns the line break inserted at each fold.
func (fe *FoldEncoding) Break() Break {
	return fe.lb
}

// LineLength returns the maximum length of a physical line.
func (fe *FoldEncoding) LineLength() int {
	return fe.lineLength
}

func isCRLF(c rune) bool  { return c == '\r' || c == '\n' }
func isSpace(c rune) bool { return c == ' ' || c == '\t' }

// Fold splits a logical line into physical lines no longer than the line
// length, inserting the line break and the fold indent at each split. The
// indent counts against the length of continuation lines. A split never falls
// inside a UTF-8 sequence when the input is valid UTF-8. No line break is
// written after the final physical line.
func (fe *FoldEncoding) Fold(s string) string {
	if len(s) <= fe.lineLength {
		return s
	}

	var out strings.Builder
	out.Grow(len(s) + (len(s)/(fe.lineLength-1)+1)*(len(fe.lb)+1))

	limit := fe.lineLength
	for len(s) > limit {
		end := limit
		for end > 0 && !utf8.RuneStart(s[end]) {
			end--
		}
		if end == 0 {
			// not UTF-8, just cut at the limit
			end = limit
		}

		out.WriteString(s[:end])
		out.WriteString(string(fe.lb))
		out.WriteString(fe.foldIndent)

		s = s[end:]
		limit = fe.lineLength - len(fe.foldIndent)
	}
	out.WriteString(s)

	return out.String()
}

// Unfold joins the physical lines of a single logical line. Every line break
// followed by a space or tab is removed along with that one whitespace
// character. A single line break at the very end of the input is ignored.
//
// In Loose mode, CRLF, LF, and CR are all accepted as line breaks and a line
// break that is not followed by whitespace is dropped, joining the lines
// anyway. In Strict mode, only CRLF is accepted and every continuation must
// begin with whitespace. Anything else is a Structural error.
func (fe *FoldEncoding) Unfold(s string, mode Mode) (string, error) {
	if !strings.ContainsAny(s, "\r\n") {
		return s, nil
	}

	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if !isCRLF(rune(c)) {
			out.WriteByte(c)
			i++
			continue
		}

		n := 1
		if strings.HasPrefix(s[i:], string(CRLF)) {
			n = 2
		} else if mode == Strict {
			return "", NewStructuralError(s, "line break at offset %d is not CRLF", i)
		}

		next := i + n
		switch {
		case next == len(s):
			// trailing line break
		case isSpace(rune(s[next])):
			next++
		case mode == Strict:
			return "", NewStructuralError(s, "continuation line at offset %d does not begin with whitespace", next)
		}
		i = next
	}

	return out.String(), nil
}

// Fold folds s using DefaultFoldEncoding.
func Fold(s string) string {
	return DefaultFoldEncoding.Fold(s)
}

// Unfold unfolds s. Unfolding is the same for every FoldEncoding.
func Unfold(s string, mode Mode) (string, error) {
	return DefaultFoldEncoding.Unfold(s, mode)
}
