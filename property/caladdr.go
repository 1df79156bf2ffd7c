package property

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// MailtoScheme is the URI scheme used by CAL-ADDRESS values that name an email
// address, as in ATTENDEE and ORGANIZER.
const MailtoScheme = "mailto:"

// ParseCalAddress parses a CAL-ADDRESS value of the form mailto:user@domain and
// returns the email address. The scheme is matched case-insensitively. Any
// other scheme, or an unparseable address, is a Structural error.
func ParseCalAddress(value string) (addr.Address, error) {
	if len(value) < len(MailtoScheme) || !strings.EqualFold(value[:len(MailtoScheme)], MailtoScheme) {
		return nil, NewStructuralError(value, "calendar address is not a mailto URI")
	}

	as, err := addr.ParseEmailAddrSpec(value[len(MailtoScheme):])
	if err != nil {
		return nil, NewStructuralError(value, "bad calendar address: %v", err)
	}

	return as, nil
}

// CalAddress parses the value of the property as a CAL-ADDRESS. See
// ParseCalAddress.
func (p *Property) CalAddress() (addr.Address, error) {
	return ParseCalAddress(p.value)
}
