// Package dataset holds the bundled race records and decodes race datasets.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/padraicbc/racefinder/models"
)

//go:embed races.json
var bundled []byte

// bundle is the wrapped dataset variant: {"races": [...]}.
type bundle struct {
	Races []models.Race `json:"races"`
}

// Bundled decodes the dataset compiled into the binary.
func Bundled() ([]models.Race, error) {
	records, err := Parse(bundled)
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return records, nil
}

// LoadFile decodes a dataset file in either variant.
func LoadFile(path string) ([]models.Race, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return records, nil
}

// Parse decodes a plain JSON array of races or a {"races": [...]} object and
// checks that every id is present and unique.
func Parse(data []byte) ([]models.Race, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty dataset")
	}

	var records []models.Race
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decoding race array: %w", err)
		}
	case '{':
		var b bundle
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decoding race bundle: %w", err)
		}
		records = b.Races
	default:
		return nil, fmt.Errorf("unexpected dataset start %q", data[0])
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks the record set invariant: ids are non-empty and unique.
func Validate(records []models.Race) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if r.ID == "" {
			return fmt.Errorf("race %d (%q) has no id", i, r.Name)
		}
		if j, dup := seen[r.ID]; dup {
			return fmt.Errorf("duplicate race id %q at %d and %d", r.ID, j, i)
		}
		seen[r.ID] = i
	}
	return nil
}
