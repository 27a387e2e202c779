package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/query"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in filter presets",
	Long: `List the built-in filter presets by name with their expressions and
combinator. Apply one with 'dv2 models --preset NAME'. Preset names are
matched ignoring case, spaces, hyphens, and underscores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writePresets(cmd.OutOrStdout())
	},
}

func writePresets(w io.Writer) error {
	for _, p := range query.Presets() {
		mode := "all"
		if p.Any {
			mode = "any"
		}
		if _, err := fmt.Fprintf(w, "%-10s  %-3s  %s\n", p.Name, mode, p.Description); err != nil {
			return err
		}
		for _, expr := range p.Exprs {
			if _, err := fmt.Fprintf(w, "%-10s  %-3s  %s\n", "", "", expr); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
