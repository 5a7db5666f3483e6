package gateway

import (
	"fmt"

	"github.com/c360studio/semvocab/rules"
)

// Strictness governs what happens when a checkpoint produces errors.
type Strictness string

const (
	// StrictnessStrict raises a terminal failure after an error-bearing
	// stage completes.
	StrictnessStrict Strictness = "strict"

	// StrictnessWarn logs all findings and returns normally.
	StrictnessWarn Strictness = "warn"

	// StrictnessReport only ever returns structured results.
	StrictnessReport Strictness = "report"
)

// Valid reports whether s names a known strictness policy.
func (s Strictness) Valid() bool {
	switch s {
	case StrictnessStrict, StrictnessWarn, StrictnessReport:
		return true
	}
	return false
}

// Configuration is the gateway's only mutable state. It is set explicitly
// by the caller, never inferred, and replaced wholesale via Configure.
type Configuration struct {
	// Strictness selects the failure policy.
	Strictness Strictness `json:"strictness" yaml:"strictness"`

	// EnabledCategories optionally restricts checks to rules of these
	// categories. Empty means all categories.
	EnabledCategories []rules.Category `json:"enabled_categories,omitempty" yaml:"enabled_categories"`

	// SkipRules optionally lists rule ids whose findings are suppressed.
	SkipRules []string `json:"skip_rules,omitempty" yaml:"skip_rules"`
}

// DefaultConfiguration returns the configuration used until the caller
// sets one: warn-level strictness with every rule category enabled.
func DefaultConfiguration() Configuration {
	return Configuration{Strictness: StrictnessWarn}
}

// Validate checks that the configuration is usable.
func (c Configuration) Validate() error {
	if !c.Strictness.Valid() {
		return fmt.Errorf("unknown strictness %q", c.Strictness)
	}
	for _, cat := range c.EnabledCategories {
		switch cat {
		case rules.CategoryNaming, rules.CategoryStructural, rules.CategoryRelationship, rules.CategoryTaxonomy:
		default:
			return fmt.Errorf("unknown rule category %q", cat)
		}
	}
	return nil
}

// categoryEnabled reports whether findings of cat should be kept.
func (c Configuration) categoryEnabled(cat rules.Category) bool {
	if len(c.EnabledCategories) == 0 {
		return true
	}
	for _, enabled := range c.EnabledCategories {
		if enabled == cat {
			return true
		}
	}
	return false
}

// ruleSkipped reports whether findings of id should be suppressed.
func (c Configuration) ruleSkipped(id string) bool {
	for _, skip := range c.SkipRules {
		if skip == id {
			return true
		}
	}
	return false
}
