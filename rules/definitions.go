package rules

// definitions is the fixed rule catalog, in catalog order. Loaded once at
// construction and never mutated.
var definitions = []Rule{
	// Naming rules.
	{
		ID:          "N01",
		Category:    CategoryNaming,
		Name:        "Lowercase handles",
		Description: "Handles use lowercase letters and digits only.",
		Correct:     []string{"person", "record"},
		Incorrect:   []string{"Person", "RECORD"},
		Violation:   "handle %s is not lowercase",
	},
	{
		ID:          "N02",
		Category:    CategoryNaming,
		Name:        "Underscore delimiting",
		Description: "Derived handles join segments with a single underscore; no leading, trailing or doubled separators.",
		Correct:     []string{"person_record"},
		Incorrect:   []string{"_person", "person__record", "person-record"},
		Violation:   "handle %s is not underscore-delimited",
	},
	{
		ID:          "N03",
		Category:    CategoryNaming,
		Name:        "Single-token nodes",
		Description: "First-level node handles are single tokens; the separator is reserved for derived handles.",
		Correct:     []string{"observation"},
		Incorrect:   []string{"observation_value"},
	},

	// Structural rules.
	{
		ID:          "S01",
		Category:    CategoryStructural,
		Name:        "Canonical membership",
		Description: "Every handle must resolve to a generative level: a declared node, a generated compound or taxonomy, or a sub-taxonomy of a valid parent.",
		Correct:     []string{"person", "person_record", "person_type"},
		Incorrect:   []string{"patient", "persn_record"},
		Violation:   "handle %s is not part of the canonical vocabulary",
	},
	{
		ID:          "S02",
		Category:    CategoryStructural,
		Name:        "Domain nodes do not compound",
		Description: "Domain nodes scope the vocabulary and never appear as a compound component.",
		Correct:     []string{"person_record"},
		Incorrect:   []string{"health_record", "person_health"},
		Violation:   "handle %s pairs a domain node",
	},
	{
		ID:          "S03",
		Category:    CategoryStructural,
		Name:        "Unique glyphs",
		Description: "Every node declares a display glyph used by no other node.",
	},

	// Relationship rules.
	{
		ID:          "R01",
		Category:    CategoryRelationship,
		Name:        "Order encodes direction",
		Description: "A_B and B_A are distinct compounds with independently generated meanings.",
		Correct:     []string{"person_record", "record_person"},
	},
	{
		ID:          "R02",
		Category:    CategoryRelationship,
		Name:        "No self pairing",
		Description: "A compound never repeats a node against itself.",
		Incorrect:   []string{"person_person"},
		Violation:   "handle %s pairs a node with itself",
	},
	{
		ID:          "R03",
		Category:    CategoryRelationship,
		Name:        "Declared modifier extension",
		Description: "A modifier may precede another modifier only when the extension is declared in source data; the relation is asymmetric.",
		Correct:     []string{"condition_status"},
	},
	{
		ID:          "R04",
		Category:    CategoryRelationship,
		Name:        "Semantic applicability",
		Description: "A modifier applied to a node should be listed in the curated node-to-modifier compatibility table, independent of grammatical validity.",
		Correct:     []string{"person_condition"},
		Incorrect:   []string{"record_condition"},
		Violation:   "modifier %s is not meaningful for %s",
	},
	{
		ID:          "R05",
		Category:    CategoryRelationship,
		Name:        "Generated meaning",
		Description: "Every compound carries a generated semantic-meaning string derived from its components.",
	},
	{
		ID:          "R06",
		Category:    CategoryRelationship,
		Name:        "Glyph concatenation order",
		Description: "A compound's glyph concatenates its component glyphs in handle order, so direction is visible in the symbol.",
		Correct:     []string{"person_record → 👤📋"},
		Incorrect:   []string{"person_record → 📋👤"},
	},

	// Taxonomy rules.
	{
		ID:          "T01",
		Category:    CategoryTaxonomy,
		Name:        "Compound type taxonomy",
		Description: "Every compound in a model must be accompanied by its \"<handle>_type\" taxonomy.",
		Correct:     []string{"person_record + person_record_type"},
		Incorrect:   []string{"person_record alone"},
		Violation:   "compound %s has no type taxonomy in the checked set",
	},
	{
		ID:          "T02",
		Category:    CategoryTaxonomy,
		Name:        "Nesting depth",
		Description: "Taxonomy nesting beyond six separators is advisory-flagged; deep chains usually indicate over-modeling. This is a warning, never a hard failure.",
		Violation:   "handle %s nests %d levels deep",
	},
	{
		ID:          "T03",
		Category:    CategoryTaxonomy,
		Name:        "No self classification",
		Description: "The type modifier never receives a type taxonomy; \"type_type\" does not exist.",
		Incorrect:   []string{"type_type"},
	},
	{
		ID:          "T04",
		Category:    CategoryTaxonomy,
		Name:        "Inherited category",
		Description: "A type taxonomy inherits its category from its parent; compound taxonomies inherit from the compound's first component.",
	},
}
