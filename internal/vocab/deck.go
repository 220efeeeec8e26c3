package vocab

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDeck is returned when a deck file contains a record that fails validation.
var ErrInvalidDeck = errors.New("invalid deck")

var validate = validator.New()

// LoadDeck reads a YAML deck file: a list of {source, target, category} mappings.
// An empty file yields an empty store.
func LoadDeck(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return ParseDeck(data)
}

// ParseDeck parses and validates YAML deck content.
func ParseDeck(data []byte) (*Store, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}

	for i := range records {
		if err := ValidateRecord(records[i]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidDeck, i+1, err)
		}
	}

	return NewStore(records), nil
}

// ValidateRecord checks that every field of r is set.
func ValidateRecord(r Record) error {
	if err := validate.Struct(r); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
