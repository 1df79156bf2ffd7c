package date

import (
	"fmt"
	"strings"

	"github.com/zostay/go-ical/param"
	"github.com/zostay/go-ical/property"
)

// Names of properties that hold a DATE or DATE-TIME value.
const (
	Completed    = "COMPLETED"
	Created      = "CREATED"
	DtEnd        = "DTEND"
	DtStamp      = "DTSTAMP"
	DtStart      = "DTSTART"
	Due          = "DUE"
	LastModified = "LAST-MODIFIED"
	RecurrenceID = "RECURRENCE-ID"
)

// Names lists all the property names holding a single date value.
var Names = []string{
	Completed, Created, DtEnd, DtStamp, DtStart, Due, LastModified, RecurrenceID,
}

// IsDateProperty returns true if the named property holds a date value.
func IsDateProperty(name string) bool {
	for _, n := range Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Date is a property whose value is a DATE or DATE-TIME. It keeps the name and
// parameters of the property it was made from and generates its value from the
// numeric fields.
type Date struct {
	prop *property.Property

	year, month, day     int
	hour, minute, second int

	utc      bool // meaningful only when dateOnly is false
	dateOnly bool // no time of day
}

var _ property.Field = (*Date)(nil)

// New creates a date-only Date with the given property name, e.g., DTSTART. A
// VALUE=DATE parameter is added. The year, month, and day are stored as given
// without any range checks. The only error returned is for a bad name.
func New(name string, year, month, day int) (*Date, error) {
	p, err := property.New(name, "")
	if err != nil {
		return nil, err
	}

	d := &Date{
		prop:     p,
		year:     year,
		month:    month,
		day:      day,
		dateOnly: true,
	}
	p.SetValue(d.Value())
	p.AddParam(param.Value, param.TypeDate)

	return d, nil
}

// Parse parses a complete content line, such as DTSTART:20230101T090000Z,
// including any folded continuation lines. See FromProperty for how the value
// is handled.
func Parse(text string, opts ...property.ParseOption) (*Date, error) {
	p, err := property.Parse(text, opts...)
	if err != nil {
		return nil, err
	}

	return FromProperty(p, opts...)
}

// FromProperty creates a Date from the value of an already parsed property. The
// property is copied, not shared.
//
// Text that does not match the date grammar results in a property.Structural
// error. A date or time that is out of range, such as 20230230, results in a
// property.DataValidity error. A VALUE=DATE parameter makes the Date date-only
// even when the value has a time, which is checked and then dropped. In Strict
// mode, a VALUE parameter other than DATE or DATE-TIME is a Structural error.
// In Loose mode, it is ignored and the form of the value decides whether the
// Date has a time.
func FromProperty(p *property.Property, opts ...property.ParseOption) (*Date, error) {
	d := &Date{prop: p.Clone()}
	if err := d.parseValue(property.ModeOf(opts...)); err != nil {
		return nil, err
	}
	return d, nil
}

// Clone returns a deep copy of the date.
func (d *Date) Clone() *Date {
	c := *d
	c.prop = d.prop.Clone()
	return &c
}

// Name returns the name of the property, e.g., DTSTART.
func (d *Date) Name() string {
	return d.prop.Name()
}

// Params returns a copy of the parameters of the property.
func (d *Date) Params() param.List {
	return d.prop.Params()
}

// Param returns the value of the named parameter.
func (d *Date) Param(name string) (string, bool) {
	return d.prop.Param(name)
}

// AddParam appends a parameter to the property.
func (d *Date) AddParam(name, value string) {
	d.prop.AddParam(name, value)
}

// Value generates the value string from the current fields.
func (d *Date) Value() string {
	var b strings.Builder
	b.Grow(16)
	fmt.Fprintf(&b, "%04d%02d%02d", d.year, d.month, d.day)
	if !d.dateOnly {
		fmt.Fprintf(&b, "T%02d%02d%02d", d.hour, d.minute, d.second)
		if d.utc {
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// Property returns a standalone property holding the name, parameters, and
// current value of the date.
func (d *Date) Property() *property.Property {
	p := d.prop.Clone()
	p.SetValue(d.Value())
	return p
}

// String returns the complete, folded content line.
func (d *Date) String() string {
	return property.Format(d)
}

// Bytes returns the complete, folded content line as a slice of bytes.
func (d *Date) Bytes() []byte {
	return []byte(d.String())
}

// Year returns the year.
func (d *Date) Year() int { return d.year }

// SetYear sets the year.
func (d *Date) SetYear(year int) { d.year = year }

// Month returns the month, 1 through 12.
func (d *Date) Month() int { return d.month }

// SetMonth sets the month. No range check is made.
func (d *Date) SetMonth(month int) { d.month = month }

// Day returns the day of the month.
func (d *Date) Day() int { return d.day }

// SetDay sets the day of the month. No range check is made.
func (d *Date) SetDay(day int) { d.day = day }

// Hour returns the hour, 0 through 23. It is always 0 for a date-only Date.
func (d *Date) Hour() int { return d.hour }

// SetHour sets the hour. It does nothing on a date-only Date.
func (d *Date) SetHour(hour int) {
	if !d.dateOnly {
		d.hour = hour
	}
}

// Minute returns the minute. It is always 0 for a date-only Date.
func (d *Date) Minute() int { return d.minute }

// SetMinute sets the minute. It does nothing on a date-only Date.
func (d *Date) SetMinute(minute int) {
	if !d.dateOnly {
		d.minute = minute
	}
}

// Second returns the second. It is always 0 for a date-only Date.
func (d *Date) Second() int { return d.second }

// SetSecond sets the second. It does nothing on a date-only Date.
func (d *Date) SetSecond(second int) {
	if !d.dateOnly {
		d.second = second
	}
}

// UTC returns true if the time is in UTC. This is only meaningful when the
// Date has a time.
func (d *Date) UTC() bool { return d.utc }

// SetUTC marks the time as UTC or floating local time.
func (d *Date) SetUTC(utc bool) { d.utc = utc }

// DateOnly returns true if the Date has no time of day.
func (d *Date) DateOnly() bool { return d.dateOnly }

// SetDateOnly switches between a date and a date-time. Switching to a date
// resets the time of day to midnight. If the property carries a VALUE
// parameter, it is updated to match.
func (d *Date) SetDateOnly(dateOnly bool) {
	d.dateOnly = dateOnly
	if dateOnly {
		d.hour, d.minute, d.second = 0, 0, 0
	}

	if _, found := d.prop.Param(param.Value); !found {
		return
	}

	vt := param.TypeDateTime
	if dateOnly {
		vt = param.TypeDate
	}
	d.prop.ModifyParams(param.Set(param.Value, vt))
}
