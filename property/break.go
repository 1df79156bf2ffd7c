package property

// Break represents the line break written between physical lines.
type Break string

// Constants for use when selecting a line break. RFC 2445 requires CRLF, so
// choose that unless you know better.
const (
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
	CR   Break = "\x0d"     // \r - old Macs linebreak
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// valid reports whether b is one of the recognized line breaks.
func (b Break) valid() bool {
	return b == CRLF || b == LF || b == CR
}
