package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

var checkCmd = newCheckCommand()

func newCheckCommand() *cobra.Command {
	var (
		registryPath string
		agents       bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint a registry file",
		Long: `Lint a registry file: report duplicate aliases, missing required
fields, wrongly typed fields, and a per-group record breakdown.

Findings are informational. The command fails only when the registry
cannot be loaded at all.

Examples:
  dv2 check
  dv2 check --registry ./Models.json
  dv2 check --agents`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := setupDebugLog()
			if err != nil {
				return err
			}
			defer cleanup()

			profile := registry.ModelsProfile
			path := cfg.ModelsFile
			if agents {
				profile = registry.AgentsProfile
				path = cfg.AgentsFile
			}
			if registryPath != "" {
				path = registryPath
			}

			reg, err := registry.Load(path)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), path, profile, registry.Lint(reg, profile))
		},
	}

	cmd.Flags().StringVar(&registryPath, "registry", "", "registry file to lint (overrides config)")
	cmd.Flags().BoolVar(&agents, "agents", false, "lint the agent registry instead of models")
	return cmd
}

func writeReport(w io.Writer, path string, profile registry.Profile, report *registry.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d records\n", path, report.Records)

	if len(report.DuplicateAliases) > 0 {
		b.WriteString("\nduplicate aliases:\n")
		for _, clash := range report.DuplicateAliases {
			fmt.Fprintf(&b, "  %s: %s\n", clash.Alias, strings.Join(clash.RecordIDs, ", "))
		}
	}

	if len(report.MissingFields) > 0 {
		b.WriteString("\nmissing fields:\n")
		for _, f := range report.MissingFields {
			fmt.Fprintf(&b, "  %s: %s\n", f.RecordID, f.Field)
		}
	}

	if len(report.TypeIssues) > 0 {
		b.WriteString("\ntype issues:\n")
		for _, f := range report.TypeIssues {
			fmt.Fprintf(&b, "  %s: %s %s\n", f.RecordID, f.Field, f.Problem)
		}
	}

	if len(report.Groups) > 0 {
		fmt.Fprintf(&b, "\nrecords by %s:\n", profile.GroupField)
		for _, g := range report.Groups {
			fmt.Fprintf(&b, "  %s: %d\n", g.Group, g.Count)
		}
	}

	if report.Clean() {
		b.WriteString("\nok\n")
	} else {
		issues := len(report.DuplicateAliases) + len(report.MissingFields) + len(report.TypeIssues)
		fmt.Fprintf(&b, "\n%d issues\n", issues)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
