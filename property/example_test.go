package property_test

import (
	"fmt"

	"github.com/zostay/go-ical/property"
)

func ExampleParse() {
	p, err := property.Parse("ATTENDEE;ROLE=REQ-PARTICIPANT;RSVP=TRUE:mailto:a@b.com")
	if err != nil {
		panic(err)
	}

	fmt.Println(p.Name())
	for _, pp := range p.Params() {
		fmt.Printf("%s = %s\n", pp.Name, pp.Value)
	}
	fmt.Println(p.Value())
	fmt.Println(p)

	// Output:
	// ATTENDEE
	// ROLE = REQ-PARTICIPANT
	// RSVP = TRUE
	// mailto:a@b.com
	// ATTENDEE;ROLE="REQ-PARTICIPANT";RSVP="TRUE":mailto:a@b.com
}
