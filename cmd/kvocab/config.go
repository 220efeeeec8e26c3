package main

import (
	"errors"
	"fmt"

	"github.com/kurdish-vocab/kvocab/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set values in the global config file (~/.config/kvocab/config.yml).

Usage:
  kvocab config                              # Show all config
  kvocab config deck                         # Get specific value
  kvocab config deck ~/decks/kurdish.yml     # Set value
  kvocab config history-db ~/.local/share/kvocab/history.db
  kvocab config log-level debug

Keys:
  deck        YAML deck file used instead of the built-in words
  history-db  SQLite file for practice history (empty disables history)
  log-level   debug, info, warn or error

Environment variables KVOCAB_DECK, KVOCAB_HISTORY_DB and KVOCAB_LOG_LEVEL
(also read from .env) override the file; flags override both.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		values := make(map[string]string, len(config.Keys))
		for _, key := range config.Keys {
			values[key], _ = cfg.Get(key)
		}
		if humanOutput {
			for _, key := range config.Keys {
				fmt.Printf("%-11s %s\n", key+":", values[key])
			}
			return nil
		}
		return outputJSON(values)
	}

	key := config.NormalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		value, err := cfg.Get(key)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		if humanOutput {
			fmt.Println(value)
			return nil
		}
		return outputJSON(map[string]string{key: value})
	}

	// Two args: set value
	if err := cfg.Set(key, args[1]); err != nil {
		code := ExitConfigError
		if errors.Is(err, config.ErrUnknownKey) {
			code = ExitError
		}
		exitWithError(code, "%v", err)
	}

	if err := config.SaveGlobalConfig(cfg); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	value, _ := cfg.Get(key)
	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
		return nil
	}
	return outputJSON(UpdateResponse{
		Status: "updated",
		Key:    key,
		Value:  value,
	})
}
