package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kurdish-vocab/kvocab/internal/logging"
)

// Environment variables that override the global config file.
const (
	EnvDeck      = "KVOCAB_DECK"
	EnvHistoryDB = "KVOCAB_HISTORY_DB"
	EnvLogLevel  = "KVOCAB_LOG_LEVEL"
)

// Keys accepted by Get and Set, in display order.
const (
	KeyDeck      = "deck"
	KeyHistoryDB = "history-db"
	KeyLogLevel  = "log-level"
)

// Keys lists the configuration keys in display order.
var Keys = []string{KeyDeck, KeyHistoryDB, KeyLogLevel}

// ErrUnknownKey is returned by Get and Set for keys outside Keys.
var ErrUnknownKey = errors.New("unknown configuration key")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", isLogLevel)
	return v
}

// isLogLevel accepts the level names listed in logging.ValidLevels.
func isLogLevel(fl validator.FieldLevel) bool {
	return slices.Contains(logging.ValidLevels, fl.Field().String())
}

// Validate checks field values, e.g. that LogLevel names a known level.
func (c *GlobalConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "loglevel":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", yamlName(e.Field()), strings.Join(logging.ValidLevels, ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", yamlName(e.Field())))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func yamlName(field string) string {
	switch field {
	case "DeckPath":
		return "deck_path"
	case "HistoryDB":
		return "history_db"
	case "LogLevel":
		return "log_level"
	}
	return strings.ToLower(field)
}

// NormalizeKey converts key formats (history-db, history_db, HISTORY_DB) to the dashed form.
func NormalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}

// Get returns the value stored under key.
func (c *GlobalConfig) Get(key string) (string, error) {
	switch NormalizeKey(key) {
	case KeyDeck:
		return c.DeckPath, nil
	case KeyHistoryDB:
		return c.HistoryDB, nil
	case KeyLogLevel:
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set stores value under key after tilde expansion and validation.
// c is left unchanged when the new value is invalid.
func (c *GlobalConfig) Set(key, value string) error {
	next := *c
	switch NormalizeKey(key) {
	case KeyDeck:
		next.DeckPath = ExpandTilde(value)
	case KeyHistoryDB:
		next.HistoryDB = ExpandTilde(value)
	case KeyLogLevel:
		next.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Settings are the effective values after layering file, environment and flags.
type Settings struct {
	DeckPath  string
	HistoryDB string
	LogLevel  string
}

// Overrides holds command-line values; empty fields do not override.
type Overrides struct {
	DeckPath  string
	HistoryDB string
	LogLevel  string
}

// Resolve layers the global config file, KVOCAB_* environment variables
// and flag overrides, in increasing precedence.
func Resolve(flags Overrides) (Settings, error) {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		DeckPath:  cfg.DeckPath,
		HistoryDB: cfg.HistoryDB,
		LogLevel:  cfg.LogLevel,
	}

	if v := os.Getenv(EnvDeck); v != "" {
		s.DeckPath = ExpandTilde(v)
	}
	if v := os.Getenv(EnvHistoryDB); v != "" {
		s.HistoryDB = ExpandTilde(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = strings.ToLower(v)
	}

	if flags.DeckPath != "" {
		s.DeckPath = ExpandTilde(flags.DeckPath)
	}
	if flags.HistoryDB != "" {
		s.HistoryDB = ExpandTilde(flags.HistoryDB)
	}
	if flags.LogLevel != "" {
		s.LogLevel = strings.ToLower(flags.LogLevel)
	}

	check := GlobalConfig{LogLevel: s.LogLevel}
	if err := check.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}
