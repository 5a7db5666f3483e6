package vocabulary

// Category classifies a node's role in the notation.
type Category string

const (
	// CategoryDomain marks top-level subject areas. Domain nodes group
	// and scope the rest of the vocabulary and never participate in
	// compound generation.
	CategoryDomain Category = "domain"

	// CategoryCentral marks the core entities people model against.
	CategoryCentral Category = "central"

	// CategoryContext marks situational entities that frame central ones.
	CategoryContext Category = "context"

	// CategoryContent marks information artifacts.
	CategoryContent Category = "content"

	// CategoryModifier marks annotation nodes that qualify other nodes.
	CategoryModifier Category = "modifier"
)

// Categories lists all node categories in canonical order.
var Categories = []Category{
	CategoryDomain,
	CategoryCentral,
	CategoryContext,
	CategoryContent,
	CategoryModifier,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryDomain, CategoryCentral, CategoryContext, CategoryContent, CategoryModifier:
		return true
	}
	return false
}

const (
	// Separator joins handle segments in compounds and taxonomies.
	Separator = "_"

	// TypeSuffix is appended to a parent handle to form its type taxonomy.
	TypeSuffix = "_type"

	// TypeModifier is the handle of the classification modifier itself.
	// It is the one node that never receives a type taxonomy.
	TypeModifier = "type"
)

// Node is one atomic entry in the canonical vocabulary.
type Node struct {
	// Handle is the unique lowercase identifier. Node handles are single
	// tokens; the separator is reserved for derived handles.
	Handle string `json:"handle"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Glyph is the unique display symbol. Compound glyphs are formed by
	// concatenating component glyphs in handle order.
	Glyph string `json:"glyph"`

	// Category places the node in the notation.
	Category Category `json:"category"`

	// Subcategory optionally refines the category.
	Subcategory string `json:"subcategory,omitempty"`

	// Description explains what the node represents.
	Description string `json:"description,omitempty"`

	// Domain optionally links the node to a domain node's handle.
	Domain string `json:"domain,omitempty"`

	// ValidExtensions lists, for modifier nodes, the modifier handles this
	// modifier may precede. The relation is asymmetric: a symmetric pairing
	// must be declared on both nodes.
	ValidExtensions []string `json:"valid_extensions,omitempty"`
}
