package date

import (
	"fmt"
	"sort"

	"github.com/zostay/go-ical/property"
)

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compare orders by year, month, day, hour, minute, and second. The UTC flag is
// not considered.
func compare(a, b *Date) int {
	if c := cmpInt(a.year, b.year); c != 0 {
		return c
	}
	if c := cmpInt(a.month, b.month); c != 0 {
		return c
	}
	if c := cmpInt(a.day, b.day); c != 0 {
		return c
	}
	if c := cmpInt(a.hour, b.hour); c != 0 {
		return c
	}
	if c := cmpInt(a.minute, b.minute); c != 0 {
		return c
	}
	return cmpInt(a.second, b.second)
}

// Compare returns -1, 0, or 1 as d is before, the same as, or after other. The
// other value must be a *Date or a Date. Anything else, including a nil *Date,
// results in a property.TypeMismatch error.
func (d *Date) Compare(other any) (int, error) {
	switch o := other.(type) {
	case *Date:
		if o != nil {
			return compare(d, o), nil
		}
	case Date:
		return compare(d, &o), nil
	}

	return 0, property.NewTypeMismatchError(fmt.Sprintf("%v", other),
		"cannot compare a date with %T", other)
}

// Before returns true if d comes before o.
func (d *Date) Before(o *Date) bool { return compare(d, o) < 0 }

// After returns true if d comes after o.
func (d *Date) After(o *Date) bool { return compare(d, o) > 0 }

// Equal returns true if d and o have the same date and time fields.
func (d *Date) Equal(o *Date) bool { return compare(d, o) == 0 }

// Sort sorts the dates in ascending order. Dates that compare equal keep their
// relative order.
func Sort(ds []*Date) {
	sort.SliceStable(ds, func(i, j int) bool {
		return compare(ds[i], ds[j]) < 0
	})
}
