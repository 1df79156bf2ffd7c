// Package date provides the iCalendar DATE and DATE-TIME value types used by
// properties like DTSTART, DTEND, DTSTAMP, DUE, and LAST-MODIFIED.
//
// Three value forms are accepted:
//
//	19991231          date only, no time
//	19991231T115900   date with local ("floating") time
//	19991231T115900Z  date and time in UTC
//
// A Date is parsed from a whole content line with Parse, which validates every
// field, or built from a year, month, and day with New, which validates
// nothing. The value string is not kept: it is regenerated from the fields
// every time the Date is written out, so changes made with the setters always
// show up in the output.
//
// Leap years are decided by the rule "the year is divisible by 4". Century years
// are not special cased, so 19000229 is accepted. This is long standing
// behavior that existing data depends on. Please don't "fix" it.
package date
