package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-ical/property"
)

func newUnfoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unfold file",
		Short: "Print each content line of a file on a single line",
		Args:  cobra.ExactArgs(1),
		RunE:  RunUnfold,
	}
}

// WriteUnfolded writes every content line of text to w, unfolded, one per line.
func WriteUnfolded(w io.Writer, text string, mode property.Mode) error {
	lines, err := property.SplitLines(text)
	if err != nil && mode == property.Strict {
		return err
	}

	for i, line := range lines {
		uf, err := property.Unfold(string(line), mode)
		if err != nil {
			return fmt.Errorf("content line %d: %w", i+1, err)
		}
		if _, err := fmt.Fprintln(w, uf); err != nil {
			return err
		}
	}

	return nil
}

// RunUnfold runs the unfold command.
func RunUnfold(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	text, err := cfg.ReadFile(args[0])
	if err != nil {
		return err
	}

	return WriteUnfolded(cmd.OutOrStdout(), text, cfg.Mode)
}
