package property

import "strings"

// BadStartError is returned when a document begins with continuation lines
// that have no content line to belong to. This text is preserved in the error
// object.
type BadStartError struct {
	BadStart string // the text skipped at the start of the document
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "document starts with a continuation line"
}

// Line represents the unparsed text of a single content line, including any
// folded continuation lines and their line breaks.
type Line string

// Lines represents the unparsed text of zero or more content lines.
type Lines []Line

// nextBreak returns the offset of the next line break in s and the length of
// that break. If there is no break, it returns len(s) and 0.
func nextBreak(s string) (int, int) {
	ix := strings.IndexAny(s, "\r\n")
	if ix < 0 {
		return len(s), 0
	}
	if strings.HasPrefix(s[ix:], string(CRLF)) {
		return ix, 2
	}
	return ix, 1
}

// SplitLines splits a whole document into content lines. Any physical line
// starting with a space or tab is a continuation of the line before it and is
// kept together with it, folding and all. Blank lines are dropped. CRLF, LF,
// and CR are all recognized as line breaks here. Whether a given break is
// acceptable is up to the mode used when parsing each Line.
//
// If the document starts with continuation lines, these are skipped in the
// Lines returned. However, a *BadStartError will be returned with them.
func SplitLines(text string) (Lines, error) {
	ls := make(Lines, 0, len(text)/LineLength+1)
	var err *BadStartError
	for len(text) > 0 {
		end, n := nextBreak(text)
		line := text[:end+n]
		text = text[end+n:]

		if end == 0 {
			continue
		}

		if isSpace(rune(line[0])) {
			if len(ls) == 0 {
				if err != nil {
					err.BadStart += line
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			ls[len(ls)-1] += Line(line)
		} else {
			ls = append(ls, Line(line))
		}
	}

	if err != nil {
		return ls, err
	}
	return ls, nil
}
