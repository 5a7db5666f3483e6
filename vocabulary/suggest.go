package vocabulary

import (
	"fmt"
	"strings"
)

// GenericSuggestion is returned when no synonym or substring match exists.
const GenericSuggestion = "no close match found; review the canonical vocabulary reference"

// synonyms maps common informal terms to canonical handles. Hits here win
// over the substring scan.
var synonyms = map[string]string{
	"patient":      "person",
	"client":       "person",
	"individual":   "person",
	"user":         "person",
	"org":          "organization",
	"company":      "organization",
	"agency":       "organization",
	"team":         "group",
	"community":    "group",
	"location":     "place",
	"site":         "place",
	"address":      "place",
	"incident":     "event",
	"appointment":  "encounter",
	"visit":        "encounter",
	"connection":   "relationship",
	"file":         "record",
	"chart":        "record",
	"doc":          "document",
	"report":       "document",
	"comment":      "note",
	"measurement":  "observation",
	"reading":      "observation",
	"goal":         "plan",
	"kind":         "type",
	"state":        "status",
	"diagnosis":    "condition",
	"trait":        "characteristic",
	"attribute":    "characteristic",
	"position":     "role",
	"severity":     "acuity",
	"urgency":      "acuity",
	"phase":        "stage",
	"class":        "category",
	"grouping":     "category",
}

// Suggester maps unrecognized terms to plausible canonical handles. Its
// output is best-effort diagnostics only; callers must not treat it as
// authoritative.
type Suggester struct {
	store *Store
}

// NewSuggester creates a Suggester over store.
func NewSuggester(store *Store) *Suggester {
	return &Suggester{store: store}
}

// Suggest returns a human-readable suggestion for term. It lower-cases the
// term, consults the synonym table, then scans canonical node handles in
// declaration order for a bidirectional substring containment match, and
// finally falls back to a generic message.
func (s *Suggester) Suggest(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return GenericSuggestion
	}

	if canonical, ok := synonyms[term]; ok {
		return fmt.Sprintf("use %q instead of %q", canonical, term)
	}

	for _, n := range s.store.Nodes() {
		if strings.Contains(n.Handle, term) || strings.Contains(term, n.Handle) {
			return fmt.Sprintf("closest canonical handle is %q", n.Handle)
		}
	}

	return GenericSuggestion
}
