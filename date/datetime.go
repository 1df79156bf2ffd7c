package date

import (
	"time"

	"github.com/zostay/go-ical/param"
	"github.com/zostay/go-ical/property"
)

// DateTime is a plain record of the fields of a Date for handing to code that
// has no reason to know about content lines.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	UTC    bool
}

// DateTime returns the fields of the date as a DateTime.
func (d *Date) DateTime() DateTime {
	return DateTime{
		Year:   d.year,
		Month:  d.month,
		Day:    d.day,
		Hour:   d.hour,
		Minute: d.minute,
		Second: d.second,
		UTC:    d.utc && !d.dateOnly,
	}
}

// Time returns the date as a time.Time. A UTC date-time is always returned in
// time.UTC. Anything else is floating and is placed in loc, or in time.UTC if
// loc is nil. Out of range fields are normalized the way time.Date does it.
func (d *Date) Time(loc *time.Location) time.Time {
	if loc == nil || (d.utc && !d.dateOnly) {
		loc = time.UTC
	}
	return time.Date(d.year, time.Month(d.month), d.day, d.hour, d.minute, d.second, 0, loc)
}

// FromTime creates a Date from a time.Time. With dateOnly set, this is the same
// as New with the year, month, and day of t. Otherwise, the result is a
// date-time carrying a VALUE=DATE-TIME parameter, marked as UTC when t is in
// time.UTC. Other locations are written as floating local time.
func FromTime(name string, t time.Time, dateOnly bool) (*Date, error) {
	if dateOnly {
		return New(name, t.Year(), int(t.Month()), t.Day())
	}

	p, err := property.New(name, "")
	if err != nil {
		return nil, err
	}

	d := &Date{
		prop:   p,
		year:   t.Year(),
		month:  int(t.Month()),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		utc:    t.Location() == time.UTC,
	}
	p.SetValue(d.Value())
	p.AddParam(param.Value, param.TypeDateTime)

	return d, nil
}
