package date

import (
	"strings"

	"github.com/zostay/go-ical/param"
	"github.com/zostay/go-ical/property"
)

var (
	monthDays     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leapMonthDays = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// IsLeapYear reports whether February has 29 days in the given year. Every year
// divisible by 4 is a leap year, centuries included.
func IsLeapYear(year int) bool {
	return year%4 == 0
}

// DaysIn returns the number of days in the given month of the given year or 0
// if the month is not 1 through 12.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if IsLeapYear(year) {
		return leapMonthDays[month-1]
	}
	return monthDays[month-1]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// atoi converts a string already checked with isDigits.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// parseValue fills in the fields of d from the value of its property.
func (d *Date) parseValue(mode property.Mode) error {
	in := d.prop.Value()

	explicitDate := false
	for _, p := range d.prop.Params() {
		if !strings.EqualFold(p.Name, param.Value) {
			continue
		}

		switch strings.ToUpper(p.Value) {
		case param.TypeDate:
			d.dateOnly = true
			explicitDate = true
		case param.TypeDateTime:
			d.dateOnly = false
			explicitDate = false
		default:
			if mode == property.Strict {
				return property.NewStructuralError(in, "unknown date VALUE %q", p.Value)
			}
		}
	}

	if len(in) < 8 || !isDigits(in[:8]) {
		return property.NewStructuralError(in, "invalid date format %q", in)
	}

	d.year = atoi(in[0:4])
	d.month = atoi(in[4:6])
	d.day = atoi(in[6:8])
	if d.day < 1 || d.day > 31 || d.month < 1 || d.month > 12 {
		return property.NewDataValidityError(in, "invalid date %q", in)
	}

	if d.day > DaysIn(d.year, d.month) {
		return property.NewDataValidityError(in, "invalid day of month %q", in)
	}

	if len(in) == 8 {
		d.dateOnly = true
		return nil
	}

	if in[8] != 'T' {
		return property.NewStructuralError(in, "invalid date format %q", in)
	}

	if len(in) < 15 {
		return property.NewStructuralError(in, "incomplete time in date string %q", in)
	}

	if !isDigits(in[9:15]) {
		return property.NewDataValidityError(in, "invalid time in date string %q", in)
	}

	d.hour = atoi(in[9:11])
	d.minute = atoi(in[11:13])
	d.second = atoi(in[13:15])
	if d.hour > 23 || d.minute > 59 || d.second > 59 {
		return property.NewDataValidityError(in, "invalid time in date string %q", in)
	}

	// VALUE=DATE wins over a time in the value
	if explicitDate {
		d.hour, d.minute, d.second = 0, 0, 0
		d.dateOnly = true
		return nil
	}

	d.dateOnly = false
	if len(in) > 15 {
		d.utc = in[15] == 'Z'
	}

	return nil
}
