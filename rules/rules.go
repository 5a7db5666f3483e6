// Package rules holds the fixed catalog of named validation rules. Every
// validator in the system references rules from this catalog by id; the
// catalog is the single source of rule metadata.
package rules

import (
	"fmt"
	"strings"
)

// Category groups rules by the concern they police. The category's first
// letter prefixes its rule ids.
type Category string

const (
	// CategoryNaming covers handle lexical conventions (N ids).
	CategoryNaming Category = "naming"

	// CategoryStructural covers vocabulary membership and shape (S ids).
	CategoryStructural Category = "structural"

	// CategoryRelationship covers compound semantics (R ids).
	CategoryRelationship Category = "relationship"

	// CategoryTaxonomy covers type taxonomy obligations (T ids).
	CategoryTaxonomy Category = "taxonomy"
)

// Categories lists all rule categories in catalog order.
var Categories = []Category{
	CategoryNaming,
	CategoryStructural,
	CategoryRelationship,
	CategoryTaxonomy,
}

// Rule ids referenced directly by the validation gateway.
const (
	// RuleUnknownHandle fires when a handle resolves to no generative level.
	RuleUnknownHandle = "S01"

	// RuleMissingTypeTaxonomy fires when a compound handle has no sibling
	// "<handle>_type" in the checked item set.
	RuleMissingTypeTaxonomy = "T01"

	// RuleDeepNesting fires, as a warning, when a taxonomy handle nests
	// beyond the advisory depth threshold.
	RuleDeepNesting = "T02"
)

// Rule is one immutable catalog entry.
type Rule struct {
	// ID is the category-prefixed identifier, e.g. "R06".
	ID string `json:"id"`

	// Category is the rule's concern group.
	Category Category `json:"category"`

	// Name is a short human-readable title.
	Name string `json:"name"`

	// Description explains what the rule requires.
	Description string `json:"description"`

	// Correct optionally lists conforming examples.
	Correct []string `json:"correct,omitempty"`

	// Incorrect optionally lists violating examples.
	Incorrect []string `json:"incorrect,omitempty"`

	// Violation is the message template attached to findings.
	Violation string `json:"violation,omitempty"`
}

// NotFoundError reports a request for an unknown rule id. It carries the
// complete valid id list: an unknown id is a caller bug, and the caller
// should see exactly what the catalog holds.
type NotFoundError struct {
	ID       string
	ValidIDs []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown rule id %q; valid ids: %s", e.ID, strings.Join(e.ValidIDs, ", "))
}

// Catalog indexes the fixed rule list by id and category.
type Catalog struct {
	rules      []Rule
	byID       map[string]int
	byCategory map[Category][]int
	ids        []string
}

// NewCatalog builds the catalog from the fixed rule definitions.
func NewCatalog() *Catalog {
	c := &Catalog{
		rules:      definitions,
		byID:       make(map[string]int, len(definitions)),
		byCategory: make(map[Category][]int),
		ids:        make([]string, 0, len(definitions)),
	}
	for i, r := range definitions {
		c.byID[r.ID] = i
		c.byCategory[r.Category] = append(c.byCategory[r.Category], i)
		c.ids = append(c.ids, r.ID)
	}
	return c
}

// Definition returns the rule for id. An unrecognized id returns a
// *NotFoundError enumerating every valid id; it is never swallowed.
func (c *Catalog) Definition(id string) (Rule, error) {
	i, ok := c.byID[id]
	if !ok {
		return Rule{}, &NotFoundError{ID: id, ValidIDs: c.IDs()}
	}
	return c.rules[i], nil
}

// ByCategory returns the rules of a category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Rule {
	idx := c.byCategory[cat]
	out := make([]Rule, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.rules[i])
	}
	return out
}

// All returns every rule in catalog order.
func (c *Catalog) All() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// IDs returns every rule id in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.rules) }
