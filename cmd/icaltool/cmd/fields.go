package cmd

import (
	"github.com/zostay/go-ical/date"
	"github.com/zostay/go-ical/property"
)

// ParseField parses a single content line. Properties known to hold a date
// value are returned as a *date.Date, everything else as a *property.Property.
func ParseField(line property.Line, opts ...property.ParseOption) (property.Field, error) {
	p, err := property.Parse(string(line), opts...)
	if err != nil {
		return nil, err
	}

	if !date.IsDateProperty(p.Name()) {
		return p, nil
	}

	return date.FromProperty(p, opts...)
}
