package cmd

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/zostay/go-ical/date"
)

func newDateCmd() *cobra.Command {
	dateCmd := &cobra.Command{
		Use:   "date expression...",
		Short: "Turn a date written almost any way into a date property",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunDate,
	}

	dateCmd.Flags().StringP("name", "n", date.DtStart, "the property name to write")
	dateCmd.Flags().BoolP("time", "t", false, "write a DATE-TIME rather than a DATE")
	dateCmd.Flags().BoolP("utc", "u", false, "convert the time to UTC first")

	return dateCmd
}

// MakeDate parses expr in any of the many formats understood by dateparse and
// returns a Date property with the given name.
func MakeDate(name, expr string, withTime, utc bool) (*date.Date, error) {
	t, err := dateparse.ParseAny(expr)
	if err != nil {
		return nil, fmt.Errorf("date string %q cannot be parsed: %w", expr, err)
	}

	if utc {
		t = t.UTC()
	}

	return date.FromTime(name, t, !withTime)
}

// RunDate runs the date command.
func RunDate(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	withTime, _ := cmd.Flags().GetBool("time")
	utc, _ := cmd.Flags().GetBool("utc")

	d, err := MakeDate(name, strings.Join(args, " "), withTime, utc)
	if err != nil {
		return err
	}

	cfg.NewLogger().Debug("made date", "value", d.Value(), "fields", d.DateTime())

	_, err = fmt.Fprintln(cmd.OutOrStdout(), d.String())
	return err
}
