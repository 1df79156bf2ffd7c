package property

import (
	"fmt"
	"strings"

	"github.com/zostay/go-ical/param"
)

// Property is a single content line: a name, an ordered list of parameters, and
// an unparsed value. The name is always uppercase. The value is kept exactly as
// it appeared after the first colon of the unfolded line.
type Property struct {
	name   string
	value  string
	params param.List
}

// New creates a new property with the given name and value and no parameters.
// The name is converted to uppercase. It returns a Structural error if the name
// is empty or contains a semicolon or colon.
func New(name, value string) (*Property, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	return &Property{
		name:  strings.ToUpper(name),
		value: value,
	}, nil
}

func checkName(name string) error {
	if name == "" {
		return NewStructuralError(name, "property name is empty")
	}
	if strings.ContainsAny(name, ";:") {
		return NewStructuralError(name, "property name %q contains ';' or ':'", name)
	}
	return nil
}

// Parse will take a single content line, including any folded continuation
// lines, and construct a Property from it.
//
// The value begins after the first colon in the line. This search does not
// skip colons inside quoted parameter values, so a parameter value containing a
// colon will be split there.
//
// Parameter values may be quoted with double quotes, which are removed. Inside
// quotes, semicolons, colons, and commas are ordinary characters. Outside of
// quotes, a comma in a parameter value is a Structural error in Strict mode and
// an ordinary character in Loose mode. Parameters with an empty name are
// dropped.
func Parse(text string, opts ...ParseOption) (*Property, error) {
	return newParser(opts).parse(text)
}

func (pr *parser) parse(text string) (*Property, error) {
	s, err := Unfold(text, pr.mode)
	if err != nil {
		return nil, err
	}

	loc := strings.IndexByte(s, ':')
	if loc < 0 {
		return nil, NewStructuralError(text, "could not find ':'")
	}

	name, rest, hasParams := strings.Cut(s[:loc], ";")
	if name == "" {
		return nil, NewStructuralError(text, "property name is empty")
	}

	p := &Property{
		name:  strings.ToUpper(name),
		value: s[loc+1:],
	}

	if hasParams {
		p.params, err = pr.parseParams(rest, text)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// parseParams scans everything between the first semicolon and the first
// colon of a content line.
func (pr *parser) parseParams(seg, text string) (param.List, error) {
	var (
		ps       param.List
		pn, pv   strings.Builder
		inQuote  bool
		inPName  = true
		finalize = func() {
			if pn.Len() > 0 {
				ps = append(ps, param.Param{Name: pn.String(), Value: pv.String()})
			}
			pn.Reset()
			pv.Reset()
			inPName = true
		}
	)

	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			continue
		case inQuote:
		case c == ';':
			finalize()
			continue
		case c == '=':
			inPName = false
			continue
		case c == ',' && !inPName && pr.mode == Strict:
			return nil, NewStructuralError(text, "found unquoted comma in parameter value")
		}

		if inPName {
			pn.WriteByte(c)
		} else {
			pv.WriteByte(c)
		}
	}
	finalize()

	return ps, nil
}

// ParseAll splits a document with SplitLines and parses every content line.
// It stops at the first line that fails to parse, returning the properties
// parsed so far with an error naming the line number.
//
// Continuation lines at the very start of the document are skipped in Loose
// mode and returned as a *BadStartError in Strict mode.
func ParseAll(text string, opts ...ParseOption) ([]*Property, error) {
	pr := newParser(opts)

	lines, err := SplitLines(text)
	if err != nil && pr.mode == Strict {
		return nil, err
	}

	ps := make([]*Property, 0, len(lines))
	for i, line := range lines {
		p, err := pr.parse(string(line))
		if err != nil {
			return ps, fmt.Errorf("content line %d: %w", i+1, err)
		}
		ps = append(ps, p)
	}

	return ps, nil
}

// Name returns the uppercase name of the property.
func (p *Property) Name() string {
	return p.name
}

// Value returns the raw value of the property.
func (p *Property) Value() string {
	return p.value
}

// SetValue replaces the raw value of the property.
func (p *Property) SetValue(value string) {
	p.value = value
}

// Params returns a copy of the parameters of the property in order.
func (p *Property) Params() param.List {
	return p.params.Clone()
}

// Param returns the value of the first parameter with the given name, matched
// case-insensitively. The second value is false if there is no such parameter.
func (p *Property) Param(name string) (string, bool) {
	return p.params.Get(name)
}

// AddParam appends a parameter to the property.
func (p *Property) AddParam(name, value string) {
	p.params = append(p.params, param.Param{Name: name, Value: value})
}

// ModifyParams applies the given modifiers to the parameters of the property.
func (p *Property) ModifyParams(changes ...param.Modifier) {
	p.params = param.Modify(p.params, changes...)
}

// Clone returns a deep copy of the property.
func (p *Property) Clone() *Property {
	return &Property{
		name:   p.name,
		value:  p.value,
		params: p.params.Clone(),
	}
}

// String returns the complete, folded content line.
func (p *Property) String() string {
	return Format(p)
}

// Bytes returns the complete, folded content line as a slice of bytes.
func (p *Property) Bytes() []byte {
	return []byte(p.String())
}
