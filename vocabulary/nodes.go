package vocabulary

// canonicalNodes is the fixed first-level node list. Declaration order is
// significant: it drives deterministic iteration everywhere downstream and
// the order in which compounds and taxonomies are generated.
var canonicalNodes = []Node{
	// Domain nodes scope the vocabulary. They never enter compounds.
	{
		Handle:      "health",
		Name:        "Health",
		Glyph:       "⚕",
		Category:    CategoryDomain,
		Description: "Clinical and wellbeing subject area.",
	},
	{
		Handle:      "social",
		Name:        "Social",
		Glyph:       "🤝",
		Category:    CategoryDomain,
		Description: "Relationships, community and support subject area.",
	},
	{
		Handle:      "admin",
		Name:        "Administration",
		Glyph:       "🗃",
		Category:    CategoryDomain,
		Description: "Operational and record-keeping subject area.",
	},

	// Central nodes are the entities everything else hangs off.
	{
		Handle:      "person",
		Name:        "Person",
		Glyph:       "👤",
		Category:    CategoryCentral,
		Subcategory: "actor",
		Description: "An individual human being.",
	},
	{
		Handle:      "organization",
		Name:        "Organization",
		Glyph:       "🏢",
		Category:    CategoryCentral,
		Subcategory: "actor",
		Description: "A formal body of people with a shared purpose.",
	},
	{
		Handle:      "group",
		Name:        "Group",
		Glyph:       "👥",
		Category:    CategoryCentral,
		Subcategory: "actor",
		Description: "An informal collection of people.",
		Domain:      "social",
	},
	{
		Handle:      "place",
		Name:        "Place",
		Glyph:       "📍",
		Category:    CategoryCentral,
		Description: "A physical or logical location.",
	},
	{
		Handle:      "event",
		Name:        "Event",
		Glyph:       "📅",
		Category:    CategoryCentral,
		Description: "Something that happens at a point or span of time.",
	},

	// Context nodes frame central nodes in a situation.
	{
		Handle:      "encounter",
		Name:        "Encounter",
		Glyph:       "🚪",
		Category:    CategoryContext,
		Description: "A direct interaction between actors.",
		Domain:      "health",
	},
	{
		Handle:      "episode",
		Name:        "Episode",
		Glyph:       "🧭",
		Category:    CategoryContext,
		Description: "A bounded period of related activity.",
		Domain:      "health",
	},
	{
		Handle:      "relationship",
		Name:        "Relationship",
		Glyph:       "🔗",
		Category:    CategoryContext,
		Description: "A standing association between actors.",
		Domain:      "social",
	},
	{
		Handle:      "environment",
		Name:        "Environment",
		Glyph:       "🌍",
		Category:    CategoryContext,
		Description: "The surrounding circumstances of a situation.",
	},

	// Content nodes are information artifacts.
	{
		Handle:      "record",
		Name:        "Record",
		Glyph:       "📋",
		Category:    CategoryContent,
		Description: "A persistent account of facts about an entity.",
		Domain:      "admin",
	},
	{
		Handle:      "document",
		Name:        "Document",
		Glyph:       "📄",
		Category:    CategoryContent,
		Description: "A self-contained authored artifact.",
		Domain:      "admin",
	},
	{
		Handle:      "note",
		Name:        "Note",
		Glyph:       "📝",
		Category:    CategoryContent,
		Description: "A short free-form annotation.",
	},
	{
		Handle:      "observation",
		Name:        "Observation",
		Glyph:       "🔎",
		Category:    CategoryContent,
		Description: "A measured or witnessed data point.",
		Domain:      "health",
	},
	{
		Handle:      "plan",
		Name:        "Plan",
		Glyph:       "🗺",
		Category:    CategoryContent,
		Description: "An intended course of action.",
	},

	// Modifier nodes annotate other nodes. ValidExtensions declares which
	// modifiers each modifier may precede; the relation is asymmetric.
	{
		Handle:      "type",
		Name:        "Type",
		Glyph:       "🏷",
		Category:    CategoryModifier,
		Subcategory: "classification",
		Description: "The classification modifier. Every other node and every compound derives a type taxonomy from it.",
	},
	{
		Handle:          "status",
		Name:            "Status",
		Glyph:           "🚦",
		Category:        CategoryModifier,
		Description:     "The current state within a lifecycle.",
		ValidExtensions: []string{"type"},
	},
	{
		Handle:          "condition",
		Name:            "Condition",
		Glyph:           "🩹",
		Category:        CategoryModifier,
		Description:     "A health or functional state attributed to an entity.",
		Domain:          "health",
		ValidExtensions: []string{"status", "acuity", "stage", "type"},
	},
	{
		Handle:          "characteristic",
		Name:            "Characteristic",
		Glyph:           "✨",
		Category:        CategoryModifier,
		Description:     "An inherent or descriptive trait.",
		ValidExtensions: []string{"type", "category"},
	},
	{
		Handle:          "role",
		Name:            "Role",
		Glyph:           "🎭",
		Category:        CategoryModifier,
		Description:     "A function an actor performs in a context.",
		Domain:          "social",
		ValidExtensions: []string{"type", "status"},
	},
	{
		Handle:          "acuity",
		Name:            "Acuity",
		Glyph:           "⚡",
		Category:        CategoryModifier,
		Description:     "Severity or urgency grading.",
		Domain:          "health",
		ValidExtensions: []string{"type"},
	},
	{
		Handle:          "stage",
		Name:            "Stage",
		Glyph:           "📶",
		Category:        CategoryModifier,
		Description:     "A position within an ordered progression.",
		ValidExtensions: []string{"type", "status"},
	},
	{
		Handle:          "category",
		Name:            "Category",
		Glyph:           "🧩",
		Category:        CategoryModifier,
		Description:     "A grouping bucket within a classification scheme.",
		ValidExtensions: []string{"type"},
	},
}

// CanonicalNodes returns a copy of the fixed node list in declaration order.
func CanonicalNodes() []Node {
	nodes := make([]Node, len(canonicalNodes))
	copy(nodes, canonicalNodes)
	return nodes
}
