package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-ical/property"
)

func newRoundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip file",
		Short: "Shows the diff of a single calendar file round-trip",
		Args:  cobra.ExactArgs(1),
		RunE:  RunRoundtrip,
	}
}

// Roundtrip parses every content line of text and writes it back out. It
// returns the unfolded logical lines of the input and of the output, one per
// line, ready for comparison.
func Roundtrip(text string, opts ...property.ParseOption) (string, string, error) {
	lines, err := property.SplitLines(text)
	if err != nil && property.ModeOf(opts...) == property.Strict {
		return "", "", err
	}

	var in, out strings.Builder
	for i, line := range lines {
		f, err := ParseField(line, opts...)
		if err != nil {
			return "", "", fmt.Errorf("content line %d: %w", i+1, err)
		}

		// these cannot fail in Loose mode
		orig, _ := property.Unfold(string(line), property.Loose)
		gen, _ := property.Unfold(property.Format(f), property.Loose)

		in.WriteString(orig)
		in.WriteByte('\n')
		out.WriteString(gen)
		out.WriteByte('\n')
	}

	return in.String(), out.String(), nil
}

// WriteDiff writes a line-by-line diff between a and b in a unified style
// without hunk headers.
func WriteDiff(w io.Writer, a, b string) (bool, error) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	changed := false
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffmatchpatch.DiffInsert:
			prefix = "+"
			changed = true
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, prefix+line); err != nil {
				return changed, err
			}
		}
	}

	return changed, nil
}

// RunRoundtrip runs the roundtrip command.
func RunRoundtrip(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	logger := cfg.NewLogger()

	path := args[0]
	text, err := cfg.ReadFile(path)
	if err != nil {
		return err
	}

	in, out, err := Roundtrip(text, cfg.ParseOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n+++ %s (round-trip)\n", path, path)
	changed, err := WriteDiff(cmd.OutOrStdout(), in, out)
	if err != nil {
		return err
	}

	logger.Info("round-trip complete", "file", path, "changed", changed)

	return nil
}
