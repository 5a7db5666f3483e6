// Package graph provides the pure reconciliation support an external
// graph layer uses to bring stored labels back in line with the canonical
// vocabulary. The graph layer owns its own connections and transactions;
// this package only maps labels to suggestions.
package graph

import (
	"strings"

	"github.com/c360studio/semvocab/vocabulary"
)

// Entity is one stored graph entry supplied for reconciliation.
type Entity struct {
	Label         string `json:"label"`
	CurrentGlyph  string `json:"currentGlyph"`
	CurrentHandle string `json:"currentHandle"`
}

// Suggestion is the reconciliation advice for one entity. It is
// best-effort: the graph layer decides what, if anything, to change.
type Suggestion struct {
	// Label echoes the input label.
	Label string `json:"label"`

	// Handle is the canonical handle the label resolves to, empty when
	// the label is not part of the vocabulary.
	Handle string `json:"handle,omitempty"`

	// Glyph is the canonical glyph for Handle, when one exists.
	Glyph string `json:"glyph,omitempty"`

	// Level is the generative level of Handle.
	Level vocabulary.Level `json:"level,omitempty"`

	// InSync is true when the entity's current handle already matches.
	InSync bool `json:"in_sync"`

	// Note carries the suggestion engine's advice for unresolved labels.
	Note string `json:"note,omitempty"`
}

// NormalizeLabel lowers a display label into handle form: trimmed,
// lower-cased, spaces and hyphens collapsed to separators.
func NormalizeLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), vocabulary.Separator)
	return s
}

// SuggestionForLabel maps a single stored label to reconciliation advice
// against reg. It never errors; an unresolvable label yields a suggestion
// note instead.
func SuggestionForLabel(reg *vocabulary.Registry, label string) Suggestion {
	handle := NormalizeLabel(label)
	c := reg.ValidateHandle(handle)
	if !c.Valid {
		return Suggestion{Label: label, Note: reg.Suggest(handle)}
	}

	s := Suggestion{Label: label, Handle: handle, Level: c.Level}
	switch c.Level {
	case vocabulary.LevelNode:
		if n, ok := reg.Store().Node(handle); ok {
			s.Glyph = n.Glyph
		}
	case vocabulary.LevelCompound:
		if comp, ok := reg.Derived().Compound(handle); ok {
			s.Glyph = comp.Glyph
		}
	case vocabulary.LevelTaxonomy:
		if tax, ok := reg.Derived().Taxonomy(handle); ok {
			s.Glyph = tax.Glyph
		}
	}
	return s
}

// ReconcileBatch maps a batch of stored entities to suggestions, marking
// the ones already in sync.
func ReconcileBatch(reg *vocabulary.Registry, entities []Entity) []Suggestion {
	out := make([]Suggestion, 0, len(entities))
	for _, e := range entities {
		s := SuggestionForLabel(reg, e.Label)
		s.InSync = s.Handle != "" && s.Handle == e.CurrentHandle && s.Glyph == e.CurrentGlyph
		out = append(out, s)
	}
	return out
}
