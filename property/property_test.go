package property_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-ical/param"
	"github.com/zostay/go-ical/property"
)

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := property.Parse(`ATTENDEE;ROLE="REQ-PARTICIPANT";RSVP="TRUE":mailto:a@b.com`)
	require.NoError(t, err)
	assert.Equal(t, "ATTENDEE", p.Name())
	assert.Equal(t, param.List{
		{Name: "ROLE", Value: "REQ-PARTICIPANT"},
		{Name: "RSVP", Value: "TRUE"},
	}, p.Params())
	assert.Equal(t, "mailto:a@b.com", p.Value())

	p, err = property.Parse("summary:Lunch: with Bob", property.WithMode(property.Strict))
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY", p.Name())
	assert.Empty(t, p.Params())
	assert.Equal(t, "Lunch: with Bob", p.Value())

	p, err = property.Parse("Dtstart;value=date;X-Foo=bar:20230101")
	require.NoError(t, err)
	assert.Equal(t, "DTSTART", p.Name())
	assert.Equal(t, param.List{
		{Name: "value", Value: "date"},
		{Name: "X-Foo", Value: "bar"},
	}, p.Params())

	v, found := p.Param("VALUE")
	assert.True(t, found)
	assert.Equal(t, "date", v)

	p, err = property.Parse("DESCRIPTION:")
	require.NoError(t, err)
	assert.Equal(t, "", p.Value())
}

func TestParse_Folded(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("DESCRIPTION:This is a lo\r\n ng description\r\n  that exists on a long line.\r\n",
		property.WithMode(property.Strict))
	require.NoError(t, err)
	assert.Equal(t, "This is a long description that exists on a long line.", p.Value())

	_, err = property.Parse("DESCRIPTION:This is a lo\n ng description", property.WithMode(property.Strict))
	assert.ErrorIs(t, err, property.ErrStructural)

	p, err = property.Parse("DESCRIPTION:This is a lo\n ng description")
	require.NoError(t, err)
	assert.Equal(t, "This is a long description", p.Value())
}

func TestParse_QuotedParams(t *testing.T) {
	t.Parallel()

	p, err := property.Parse(`ATTENDEE;X="1;2";Y=4;DELEGATED-TO="mailto:x@y.com","mailto:z@y.com":ABC`)
	require.NoError(t, err)
	assert.Equal(t, param.List{
		{Name: "X", Value: "1;2"},
		{Name: "Y", Value: "4"},
	}, p.Params()[:2])

	// the colon inside the quoted value is taken as the separator
	assert.Equal(t, "x@y.com\",\"mailto:z@y.com\":ABC", p.Value())
	assert.Equal(t, param.Param{Name: "DELEGATED-TO", Value: "mailto"}, p.Params()[2])
}

func TestParse_EmptyParamNames(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("X-THING;;=orphan;A=1;;B:value")
	require.NoError(t, err)
	assert.Equal(t, param.List{
		{Name: "A", Value: "1"},
		{Name: "B", Value: ""},
	}, p.Params())
}

func TestParse_EmptyParamNameResets(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("X-THING;=a;B=c:v", property.WithMode(property.Strict))
	require.NoError(t, err)
	assert.Equal(t, param.List{{Name: "B", Value: "c"}}, p.Params())
	assert.Equal(t, "v", p.Value())
}

func TestParse_CommaInParamName(t *testing.T) {
	t.Parallel()

	for _, mode := range []property.Mode{property.Loose, property.Strict} {
		p, err := property.Parse("X;A,B=1:v", property.WithMode(mode))
		require.NoError(t, err, mode)
		assert.Equal(t, param.List{{Name: "A,B", Value: "1"}}, p.Params())
	}
}

func TestParse_ExtraEquals(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("X-THING;A=b=c;D=\"e=f\":value")
	require.NoError(t, err)
	assert.Equal(t, param.List{
		{Name: "A", Value: "bc"},
		{Name: "D", Value: "e=f"},
	}, p.Params())
}

func TestParse_UnquotedComma(t *testing.T) {
	t.Parallel()

	const line = "ATTENDEE;DELEGATED-FROM=a,b;CN=\"Last, First\":mailto:a@b.com"

	_, err := property.Parse(line, property.WithMode(property.Strict))
	assert.ErrorIs(t, err, property.ErrStructural)
	assert.ErrorContains(t, err, "unquoted comma")

	var perr *property.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, line, perr.Input)

	p, err := property.Parse(line, property.WithMode(property.Loose))
	require.NoError(t, err)
	assert.Equal(t, param.List{
		{Name: "DELEGATED-FROM", Value: "a,b"},
		{Name: "CN", Value: "Last, First"},
	}, p.Params())

	// quoted commas are fine either way
	_, err = property.Parse("ATTENDEE;CN=\"Last, First\":mailto:a@b.com", property.WithMode(property.Strict))
	assert.NoError(t, err)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := property.Parse("SUMMARY no colon")
	assert.ErrorIs(t, err, property.ErrStructural)
	assert.ErrorContains(t, err, "could not find ':'")
	assert.Equal(t, property.Structural, property.KindOf(err))

	_, err = property.Parse(":value")
	assert.ErrorIs(t, err, property.ErrStructural)

	_, err = property.Parse(";X=1:value")
	assert.ErrorIs(t, err, property.ErrStructural)

	assert.False(t, errors.Is(err, property.ErrDataValidity))
}

func TestNew(t *testing.T) {
	t.Parallel()

	p, err := property.New("summary", "Lunch")
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY", p.Name())
	assert.Equal(t, "Lunch", p.Value())
	assert.Nil(t, p.Params())
	assert.Equal(t, "SUMMARY:Lunch", p.String())

	p.SetValue("Dinner")
	p.AddParam("LANGUAGE", "en-US")
	assert.Equal(t, `SUMMARY;LANGUAGE="en-US":Dinner`, p.String())
	assert.Equal(t, []byte(`SUMMARY;LANGUAGE="en-US":Dinner`), p.Bytes())

	for _, bad := range []string{"", "X;Y", "X:Y"} {
		_, err := property.New(bad, "v")
		assert.ErrorIs(t, err, property.ErrStructural, bad)
	}
}

func TestProperty_Params(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("ATTENDEE;ROLE=CHAIR:mailto:a@b.com")
	require.NoError(t, err)

	// Params returns a copy
	ps := p.Params()
	ps[0].Value = "NON-PARTICIPANT"
	v, _ := p.Param("role")
	assert.Equal(t, "CHAIR", v)

	p.ModifyParams(param.Set("ROLE", "OPT-PARTICIPANT"), param.Append("RSVP", "TRUE"))
	assert.Equal(t, `ATTENDEE;ROLE="OPT-PARTICIPANT";RSVP="TRUE":mailto:a@b.com`, p.String())

	c := p.Clone()
	c.AddParam("CN", "A")
	c.SetValue("mailto:c@d.com")
	assert.Equal(t, 2, p.Params().Len())
	assert.Equal(t, "mailto:a@b.com", p.Value())
}

func TestProperty_String(t *testing.T) {
	t.Parallel()

	// parameter values are always quoted on output
	p, err := property.Parse("ATTENDEE;ROLE=REQ-PARTICIPANT;RSVP=\"TRUE\":mailto:a@b.com")
	require.NoError(t, err)
	assert.Equal(t, `ATTENDEE;ROLE="REQ-PARTICIPANT";RSVP="TRUE":mailto:a@b.com`, p.String())

	long := "DESCRIPTION:" + strings.Repeat("0123456789", 20)
	p, err = property.Parse(long)
	require.NoError(t, err)

	out := p.String()
	for _, line := range strings.Split(out, "\r\n") {
		assert.LessOrEqual(t, len(line), property.LineLength)
	}

	again, err := property.Parse(out, property.WithMode(property.Strict))
	require.NoError(t, err)
	assert.Equal(t, p.Name(), again.Name())
	assert.Equal(t, p.Value(), again.Value())
}

func TestFormatWith(t *testing.T) {
	t.Parallel()

	fe, err := property.NewFoldEncoding(" ", 20, property.LF)
	require.NoError(t, err)

	p, err := property.New("SUMMARY", "a rather long summary line")
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY:a rather lon\n g summary line", property.FormatWith(p, fe))
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := property.ParseMode("strict")
	require.NoError(t, err)
	assert.Equal(t, property.Strict, m)
	assert.Equal(t, "STRICT", m.String())

	m, err = property.ParseMode(" Loose ")
	require.NoError(t, err)
	assert.Equal(t, property.Loose, m)
	assert.Equal(t, "LOOSE", m.String())

	_, err = property.ParseMode("sloppy")
	assert.Error(t, err)

	assert.Equal(t, property.Loose, property.ModeOf())
	assert.Equal(t, property.Strict, property.ModeOf(property.WithMode(property.Strict)))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := property.NewDataValidityError("20230230", "invalid day of month %q", "20230230")
	assert.Equal(t, `data validity error: invalid day of month "20230230"`, err.Error())
	assert.ErrorIs(t, err, property.ErrDataValidity)
	assert.NotErrorIs(t, err, property.ErrStructural)
	assert.NotErrorIs(t, err, property.ErrTypeMismatch)
	assert.Equal(t, "20230230", err.Input)

	err = property.NewTypeMismatchError("x", "")
	assert.Equal(t, "type mismatch error", err.Error())
	assert.Equal(t, property.TypeMismatch, property.KindOf(err))

	assert.Equal(t, property.Kind(0), property.KindOf(errors.New("other")))
}
