package cmd

import (
	"github.com/spf13/cobra"
)

// modelEqualityShortcuts are the quick string filters on the model
// registry's common fields.
var modelEqualityShortcuts = []shortcut{
	{flag: "parent", field: "parent"},
	{flag: "family", field: "family"},
	{flag: "series", field: "series"},
	{flag: "category", field: "model_category"},
	{flag: "alias", field: "alias"},
}

// modelThresholdShortcuts mirror the classic enabled/available level
// flags: a record matches when its level is at most the given bound.
var modelThresholdShortcuts = []shortcut{
	{flag: "enabled", field: "enabled"},
	{flag: "available", field: "available"},
}

var modelsCmd = newModelsCommand()

func newModelsCommand() *cobra.Command {
	o := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Query the model registry",
		Long: `Query the model registry with filter expressions and quick flags.

Records that are unavailable or disabled are skipped unless --all is
given. Filters combine with AND by default; --any switches to OR and
--invert negates the combined result.

Examples:
  # All enabled OpenAI models
  dv2 models -f parent:equals:OpenAI

  # Anthropic models sorted by context window, largest first
  dv2 models --preset anthropic --sort context_window --reverse

  # Vision-capable models as JSON
  dv2 models -f vision:>=:1 -o json

  # Provider breakdown of the whole registry
  dv2 models --all --count-by parent`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := setupDebugLog()
			if err != nil {
				return err
			}
			defer cleanup()

			return runQuery(cmd, o, modelEqualityShortcuts, modelThresholdShortcuts, cfg.ModelsFile, "parent")
		},
	}

	addQueryFlags(cmd, o)
	addShortcutFlags(cmd, modelEqualityShortcuts, modelThresholdShortcuts)
	return cmd
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
