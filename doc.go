// Package ical is the root of a library for working with the content lines of
// iCalendar documents as described in RFC 2445, sections 4.1 through 4.3.
//
// The work is split according to the layers of a content line. The property
// package handles the physical layer: folding and unfolding of long lines,
// splitting a whole document into content lines, and parsing a content line
// into a property.Property made of a name, a param.List of parameters, and a
// raw value. The param package provides that ordered, case-insensitive list of
// parameters along with modifiers for changing it. The date package builds on
// top of a property to provide a typed view of the DATE and DATE-TIME values
// found in DTSTART, DTEND, DUE, and friends.
//
// Every parser accepts a property.Mode. Loose is the default and accepts what
// real calendar software tends to write: bare LF line breaks, unquoted commas
// in parameter values, and unknown VALUE types. Strict holds input to the
// letter of the RFC. Errors carry a property.Kind, so callers can tell a
// structural problem with the text from a well-formed value that is simply
// invalid (February 30th, say) or from a comparison between mismatched types.
//
// Output is always regenerated from the parsed data. Parameter values are
// always quoted on output and long lines are folded at 75 octets, so a
// round-trip is faithful in meaning, though not necessarily byte-for-byte.
//
// The icaltool command in cmd/icaltool wraps all this up for checking,
// round-tripping, and unfolding calendar files from the command line.
package ical
