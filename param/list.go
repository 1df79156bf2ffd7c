package param

import "strings"

// Well-known parameter names and values.
const (
	// Value is the name of the parameter that selects the value type of a
	// property, e.g., VALUE=DATE.
	Value = "VALUE"

	// TypeDate is the VALUE parameter setting for date-only values.
	TypeDate = "DATE"

	// TypeDateTime is the VALUE parameter setting for date-time values.
	TypeDateTime = "DATE-TIME"
)

// Param is a single name/value parameter.
type Param struct {
	Name  string
	Value string
}

// List is an ordered list of parameters. The order only matters when the list
// is written back out.
type List []Param

// Len returns the number of parameters in the list.
func (l List) Len() int {
	return len(l)
}

// Index returns the index of the first parameter with the given name or -1 if
// there is none.
func (l List) Index(name string) int {
	for i, p := range l {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// Get returns the value of the first parameter with the given name. The second
// value reports whether any such parameter was found.
func (l List) Get(name string) (string, bool) {
	ix := l.Index(name)
	if ix < 0 {
		return "", false
	}
	return l[ix].Value, true
}

// Clone returns a copy of the list that shares nothing with the original.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	c := make(List, len(l))
	copy(c, l)
	return c
}

// Modifier is a modification to apply to a List when calling Modify().
type Modifier func(*List)

// Append is a Modifier that adds a parameter to the end of the list, even if one
// with the same name is already present.
func Append(name, value string) Modifier {
	return func(l *List) {
		*l = append(*l, Param{name, value})
	}
}

// Set is a Modifier that replaces the value of the first parameter with the
// given name or appends a new parameter if none is present.
func Set(name, value string) Modifier {
	return func(l *List) {
		if ix := l.Index(name); ix >= 0 {
			(*l)[ix].Value = value
			return
		}
		*l = append(*l, Param{name, value})
	}
}

// Delete is a Modifier that removes every parameter with the given name.
func Delete(name string) Modifier {
	return func(l *List) {
		kept := (*l)[:0]
		for _, p := range *l {
			if !strings.EqualFold(p.Name, name) {
				kept = append(kept, p)
			}
		}
		*l = kept
	}
}

// Modify clones a List, applies the given modifications (if any) and returns
// the new List:
//
//	l := param.List{{"ROLE", "CHAIR"}}
//	nl := param.Modify(l, param.Set("ROLE", "REQ-PARTICIPANT"), param.Append("RSVP", "TRUE"))
func Modify(l List, changes ...Modifier) List {
	c := l.Clone()
	for _, change := range changes {
		change(&c)
	}
	return c
}
