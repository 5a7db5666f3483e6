package vocabulary

import (
	"fmt"
	"strings"
)

// Level is a handle's depth in the generative hierarchy.
type Level string

const (
	// LevelNode is an atomic first-level node handle.
	LevelNode Level = "L1"

	// LevelCompound is a generated directed compound handle.
	LevelCompound Level = "L2_compound"

	// LevelTaxonomy is a generated type taxonomy handle.
	LevelTaxonomy Level = "L2_taxonomy"

	// LevelSubTaxonomy is a pattern-matched sub-taxonomy handle such as
	// "person_characteristic_type_gender". Only the immediate parent
	// segment is validated, not the full ancestor chain.
	LevelSubTaxonomy Level = "L3_subtaxonomy"
)

// subTaxonomySeparator delimits a taxonomy parent from its subdivision.
const subTaxonomySeparator = TypeSuffix + Separator

// Classification is the result of classifying one handle.
type Classification struct {
	Handle     string   `json:"handle"`
	Valid      bool     `json:"is_valid"`
	Level      Level    `json:"level,omitempty"`
	Category   Category `json:"category,omitempty"`
	Error      string   `json:"error,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Classifier decides which generative level an arbitrary string belongs
// to, or that it is invalid, with a best-effort suggestion.
type Classifier struct {
	store     *Store
	derived   *Derived
	suggester *Suggester
}

// NewClassifier creates a Classifier over the store and its derived
// vocabulary.
func NewClassifier(store *Store, derived *Derived, suggester *Suggester) *Classifier {
	return &Classifier{store: store, derived: derived, suggester: suggester}
}

// Classify classifies handle. The priority order is strict and first match
// wins: exact node, exact compound, exact taxonomy, then the "_type_"
// sub-taxonomy pattern. Exact matches run first so a legitimate generated
// handle that happens to contain "_type_" is never misread as level 3.
func (c *Classifier) Classify(handle string) Classification {
	if n, ok := c.store.Node(handle); ok {
		return Classification{
			Handle:   handle,
			Valid:    true,
			Level:    LevelNode,
			Category: n.Category,
		}
	}

	if _, ok := c.derived.Compound(handle); ok {
		return Classification{Handle: handle, Valid: true, Level: LevelCompound}
	}

	if _, ok := c.derived.Taxonomy(handle); ok {
		return Classification{Handle: handle, Valid: true, Level: LevelTaxonomy}
	}

	// Sub-taxonomy pattern: split at the first "_type_" and validate only
	// the immediate parent segment. Nesting may be indefinitely deep; the
	// ancestor chain beyond the parent is deliberately not verified.
	if i := strings.Index(handle, subTaxonomySeparator); i > 0 {
		parent := handle[:i]
		_, isNode := c.store.Node(parent)
		_, isCompound := c.derived.Compound(parent)
		if isNode || isCompound {
			return Classification{Handle: handle, Valid: true, Level: LevelSubTaxonomy}
		}
	}

	return Classification{
		Handle:     handle,
		Valid:      false,
		Error:      fmt.Sprintf("handle %q is not part of the canonical vocabulary", handle),
		Suggestion: c.suggester.Suggest(handle),
	}
}
