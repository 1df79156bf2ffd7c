package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-ical/param"
)

func TestList_Get(t *testing.T) {
	t.Parallel()

	l := param.List{
		{"Role", "REQ-PARTICIPANT"},
		{"RSVP", "TRUE"},
		{"role", "CHAIR"},
	}

	v, found := l.Get("ROLE")
	assert.True(t, found)
	assert.Equal(t, "REQ-PARTICIPANT", v)

	v, found = l.Get("rsvp")
	assert.True(t, found)
	assert.Equal(t, "TRUE", v)

	v, found = l.Get("CN")
	assert.False(t, found)
	assert.Equal(t, "", v)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, -1, l.Index("CN"))
	assert.Equal(t, 1, l.Index("Rsvp"))
}

func TestList_Clone(t *testing.T) {
	t.Parallel()

	var empty param.List
	assert.Nil(t, empty.Clone())

	l := param.List{{"VALUE", "DATE"}}
	c := l.Clone()
	c[0].Value = "DATE-TIME"
	assert.Equal(t, "DATE", l[0].Value)
}

func TestModify(t *testing.T) {
	t.Parallel()

	l := param.List{{"ROLE", "CHAIR"}, {"X-A", "1"}, {"x-a", "2"}}

	nl := param.Modify(l,
		param.Set("role", "REQ-PARTICIPANT"),
		param.Append("RSVP", "TRUE"),
		param.Delete("X-A"),
		param.Set("CN", "Sterling"),
	)

	assert.Equal(t, param.List{
		{"ROLE", "REQ-PARTICIPANT"},
		{"RSVP", "TRUE"},
		{"CN", "Sterling"},
	}, nl)

	// the original is untouched
	assert.Equal(t, param.List{{"ROLE", "CHAIR"}, {"X-A", "1"}, {"x-a", "2"}}, l)

	assert.Equal(t, l, param.Modify(l))
}
