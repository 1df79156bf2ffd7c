package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zostay/go-ical/property"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint file...",
		Short: "Check that every content line of the files parses",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunLint,
	}
}

// Problem describes a content line that failed to parse.
type Problem struct {
	Line int           // 1-based content line number, 0 for the document
	Kind property.Kind // 0 if the error was not a *property.Error
	Err  error
}

// Lint parses every content line of text and returns the problems found. Date
// properties get their values checked too. Continuation lines at the start of
// the document are reported as a problem with line 0 in Strict mode only.
func Lint(text string, logger *log.Logger, opts ...property.ParseOption) []Problem {
	var problems []Problem

	lines, err := property.SplitLines(text)
	var badStart *property.BadStartError
	if errors.As(err, &badStart) && property.ModeOf(opts...) == property.Strict {
		problems = append(problems, Problem{0, property.Structural, err})
	}

	for i, line := range lines {
		f, err := ParseField(line, opts...)
		if err != nil {
			problems = append(problems, Problem{i + 1, property.KindOf(err), err})
			continue
		}

		logger.Debug("ok", "line", i+1, "name", f.Name())
	}

	return problems
}

// RunLint runs the lint command.
func RunLint(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	logger := cfg.NewLogger()

	total := 0
	for _, path := range args {
		text, err := cfg.ReadFile(path)
		if err != nil {
			return err
		}

		problems := Lint(text, logger.With("file", path), cfg.ParseOptions()...)
		for _, p := range problems {
			logger.Error("bad content line",
				"file", path,
				"line", p.Line,
				"kind", p.Kind,
				"err", p.Err)
		}
		total += len(problems)

		logger.Info("checked", "file", path, "mode", cfg.Mode, "problems", len(problems))
	}

	if total > 0 {
		return fmt.Errorf("found %d problems", total)
	}

	return nil
}
