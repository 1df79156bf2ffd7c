// Package param provides the ordered list of name/value parameters that may
// decorate an iCalendar property, such as the VALUE parameter in
// DTSTART;VALUE=DATE:20230101 or the ROLE and RSVP parameters of an ATTENDEE.
//
// Parameter names are kept exactly as they were given. Lookups match names
// case-insensitively, as RFC 2445 requires.
package param
