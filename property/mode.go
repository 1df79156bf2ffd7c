package property

import (
	"fmt"
	"strings"
)

// Mode selects how forgiving the parser is.
type Mode int

// Constants for use when selecting a parse mode. If you don't know which to
// pick, stay with Loose.
const (
	Loose  Mode = iota // tolerate the common deviations from the grammar
	Strict             // reject anything that does not match the grammar
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Loose:
		return "LOOSE"
	case Strict:
		return "STRICT"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode named by s, which must be "loose" or "strict" in
// any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOOSE":
		return Loose, nil
	case "STRICT":
		return Strict, nil
	default:
		return Loose, fmt.Errorf("unknown parse mode %q", s)
	}
}

type parser struct {
	mode Mode
}

var defaultParser = parser{
	mode: Loose,
}

// ParseOption refers to options that may be passed to Parse and the other
// parsing functions to modify how the parser works.
type ParseOption func(pr *parser)

// WithMode is a ParseOption that selects the parse mode. The default is Loose.
func WithMode(m Mode) ParseOption {
	return func(pr *parser) { pr.mode = m }
}

func newParser(opts []ParseOption) *parser {
	pr := defaultParser
	for _, opt := range opts {
		opt(&pr)
	}
	return &pr
}

// ModeOf returns the parse mode selected by the given options.
func ModeOf(opts ...ParseOption) Mode {
	return newParser(opts).mode
}
