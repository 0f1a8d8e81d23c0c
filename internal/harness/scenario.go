// Package harness runs YAML-described catalog scenarios end to end:
// fixture catalog, optional TXT import, then search steps. Snapshots of
// the outcome compare against golden files, which serve as the source
// of truth for resolution behavior.
package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Sections are the map sections to create before anything runs.
	Sections []SectionFixture `yaml:"sections,omitempty"`

	// Products are catalog products to create, with their assigned
	// section names. Assignment is unvalidated, like the real store.
	Products []ProductFixture `yaml:"products,omitempty"`

	// Import is an optional product-list TXT block reconciled into the
	// catalog after the fixtures are in place.
	Import string `yaml:"import,omitempty"`

	// Searches are resolution steps executed against the final catalog.
	Searches []SearchStep `yaml:"searches,omitempty"`
}

// SectionFixture creates one section.
type SectionFixture struct {
	Name string      `yaml:"name"`
	Rect RectFixture `yaml:"rect"`
}

// RectFixture is the section rectangle in map pixels.
type RectFixture struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ProductFixture creates one product with assigned sections.
type ProductFixture struct {
	Name     string   `yaml:"name"`
	Sections []string `yaml:"sections,omitempty"`
}

// SearchStep is either an autocomplete query or a list resolution.
// Exactly one of Suggest and List must be set.
type SearchStep struct {
	// Suggest runs the query through autocomplete matching.
	Suggest string `yaml:"suggest,omitempty"`

	// List resolves the given raw product names as a bulk list.
	List []string `yaml:"list,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	for i, step := range s.Searches {
		hasSuggest := step.Suggest != ""
		hasList := len(step.List) > 0
		if hasSuggest == hasList {
			return nil, fmt.Errorf("scenario %s: search step %d must set exactly one of suggest/list", path, i)
		}
	}
	return &s, nil
}
