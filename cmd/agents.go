package cmd

import (
	"github.com/spf13/cobra"
)

// agentEqualityShortcuts are the quick string filters on the agent
// registry's common fields.
var agentEqualityShortcuts = []shortcut{
	{flag: "category", field: "category"},
	{flag: "model", field: "model"},
}

var agentsCmd = newAgentsCommand()

func newAgentsCommand() *cobra.Command {
	o := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Query the agent registry",
		Long: `Query the agent registry with the same filter surface as models.

Agent records have no availability levels, so every record is considered
unless filters exclude it.

Examples:
  # Agents in the Specialist category
  dv2 agents --category Specialist

  # Agents driving a given model, as YAML
  dv2 agents --model sonnet -o yaml

  # Category breakdown
  dv2 agents --count-by category`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := setupDebugLog()
			if err != nil {
				return err
			}
			defer cleanup()

			return runQuery(cmd, o, agentEqualityShortcuts, nil, cfg.AgentsFile, "category")
		},
	}

	addQueryFlags(cmd, o)
	addShortcutFlags(cmd, agentEqualityShortcuts, nil)
	return cmd
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}
