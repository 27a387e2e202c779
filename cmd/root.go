// Package cmd wires the dv2 command-line interface: the models and agents
// query commands, the preset catalog, and the registry lint command.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/config"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	logFile   string
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dv2",
	Short: "Query and inspect model and agent registries",
	Long: `dv2 loads JSON or YAML registries of language models and agent
definitions and selects records with composable filter expressions.

Filter expressions take the form field:operator[:value], for example
parent:equals:OpenAI or context_window:>=:128000. Filters combine with
AND by default; --any switches to OR and --invert negates the combined
result. Output formats cover tables, JSON, CSV, YAML, and a grouped tree.

Examples:
  dv2 models -f parent:equals:OpenAI -f enabled:>=:1
  dv2 models --preset anthropic --sort context_window --reverse
  dv2 agents --category Specialist -o json
  dv2 check --registry ./Models.json`,
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/dv2/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs to a file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"debug log destination (default: dv2-debug.log)")
	rootCmd.PersistentFlags().String("models-file", "",
		"path to the model registry file")
	rootCmd.PersistentFlags().String("agents-file", "",
		"path to the agent registry file")

	// Bind registry location flags to viper
	_ = viper.BindPFlag("models_file", rootCmd.PersistentFlags().Lookup("models-file"))
	_ = viper.BindPFlag("agents_file", rootCmd.PersistentFlags().Lookup("agents-file"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("models_file", defaults.ModelsFile)
	viper.SetDefault("agents_file", defaults.AgentsFile)
	viper.SetDefault("case_sensitive", defaults.CaseSensitive)
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.no_header", defaults.Output.NoHeader)
	viper.SetDefault("output.group_by", defaults.Output.GroupBy)
	viper.SetDefault("sort.fields", defaults.Sort.Fields)
	viper.SetDefault("sort.reverse", defaults.Sort.Reverse)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .dv2/config.yaml (current directory)
		// 2. ~/.config/dv2/config.yaml (user config)
		if _, err := os.Stat(".dv2/config.yaml"); err == nil {
			viper.SetConfigFile(".dv2/config.yaml")
		} else {
			viper.AddConfigPath(config.DefaultConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a default user config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := filepath.Join(config.DefaultConfigDir(), "config.yaml")
			if writeErr := config.WriteDefault(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setupDebugLog turns on file logging when --debug or DV2_DEBUG is set.
// The returned cleanup is safe to call either way.
func setupDebugLog() (func(), error) {
	debug := os.Getenv("DV2_DEBUG") != "" || debugFlag
	if !debug {
		return func() {}, nil
	}

	logPath := logFile
	if logPath == "" {
		logPath = os.Getenv("DV2_LOG")
	}
	if logPath == "" {
		logPath = "dv2-debug.log"
	}

	cleanup, err := log.Init(logPath)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "debug logging enabled", "path", logPath)
	return cleanup, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
