// Package main provides the kvocab CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kurdish-vocab/kvocab/internal/config"
	"github.com/kurdish-vocab/kvocab/internal/logging"
	"github.com/kurdish-vocab/kvocab/internal/shell"
	"github.com/kurdish-vocab/kvocab/internal/storage"
	"github.com/kurdish-vocab/kvocab/internal/vocab"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// Flag overrides for the global config.
var (
	deckFlag      string
	historyDBFlag string
	logLevelFlag  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kvocab",
	Short: "Kurdish vocabulary trainer",
	Long: `kvocab is a console Kurdish vocabulary trainer.

Run without arguments for the interactive menu:
  1. View all words
  2. Practice words in order (flip cards, q to quit)
  3. Look up a word by exact text
  4. Show the category tree
  5. Show city connections
  0. Exit

Subcommands expose the same views for scripting and print JSON by default.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&deckFlag, "deck", "", "YAML deck file to use instead of the built-in words")
	rootCmd.PersistentFlags().StringVar(&historyDBFlag, "history-db", "", "SQLite file for practice history")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Version = Version
}

func runShell(cmd *cobra.Command, args []string) error {
	// The shell is a console session; errors go to stderr as text, not JSON.
	humanOutput = true

	settings := mustResolveSettings()
	logger := mustNewLogger(settings)
	defer logger.Sync()

	words := mustLoadWords(settings)

	opts := []shell.Option{shell.WithLogger(logger)}
	if settings.HistoryDB != "" {
		db := mustOpenHistory(settings)
		defer db.Close()
		opts = append(opts, shell.WithHistory(db))
	}

	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), words, opts...)
	return sh.Run(cmd.Context())
}

// mustResolveSettings layers config file, environment and flags, exits on error.
func mustResolveSettings() config.Settings {
	settings, err := config.Resolve(config.Overrides{
		DeckPath:  deckFlag,
		HistoryDB: historyDBFlag,
		LogLevel:  logLevelFlag,
	})
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return settings
}

// mustNewLogger builds the stderr logger, exits on error.
func mustNewLogger(settings config.Settings) *zap.Logger {
	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return logger
}

// mustLoadWords returns the configured deck, or the built-in words when none is set.
func mustLoadWords(settings config.Settings) *vocab.Store {
	if settings.DeckPath == "" {
		return vocab.BuiltinStore()
	}

	words, err := vocab.LoadDeck(settings.DeckPath)
	if err != nil {
		exitWithError(ExitDataError, "loading deck %s: %v", settings.DeckPath, err)
	}
	return words
}

// mustOpenHistory opens the practice history database, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenHistory(settings config.Settings) *storage.DB {
	db, err := storage.OpenHistory(settings.HistoryDB)
	if err != nil {
		exitWithError(ExitConfigError, "opening history: %v", err)
	}
	return db
}
