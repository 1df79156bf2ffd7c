// Package property parses and generates iCalendar content lines as described in
// RFC 2445, sections 4.1 through 4.3.
//
// A content line looks like this:
//
//	ATTENDEE;ROLE="REQ-PARTICIPANT";RSVP=TRUE:mailto:a@b.com
//
// The part before the first colon is the property name, optionally followed by
// semicolon separated parameters. Everything after the first colon is the
// value, which this package stores verbatim. Lines longer than 75 octets are
// folded onto continuation lines, each beginning with a single space or tab.
//
// Parsing happens in one of two modes. Loose, the default, tolerates a handful
// of common deviations from the grammar: bare LF or CR line breaks,
// continuation lines missing their leading whitespace, and unquoted commas in
// parameter values. Strict rejects all of these with a structural error. No
// mode ever tolerates a value that is well-formed but out of range. Those are
// reported as data validity errors by packages built on this one, such as
// package date.
//
// Nothing in this package holds shared state. A Property may be used from
// multiple goroutines as long as none of them modifies it.
package property
