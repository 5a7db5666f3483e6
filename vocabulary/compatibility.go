package vocabulary

// semanticModifiers is the hand-curated node-to-modifier applicability
// table. It is distinct from grammatical validity: "record_condition" is a
// generable compound, but a condition is not meaningful for a record, so
// the pair is absent here. Modifier nodes appear as keys too; pairs like
// condition/acuity are meaningful modifier-on-modifier annotations.
var semanticModifiers = map[string][]string{
	"person":         {"type", "status", "condition", "characteristic", "role", "acuity", "stage", "category"},
	"organization":   {"type", "status", "characteristic", "role", "category"},
	"group":          {"type", "status", "characteristic", "role", "category"},
	"place":          {"type", "status", "characteristic", "category"},
	"event":          {"type", "status", "acuity", "stage", "category"},
	"encounter":      {"type", "status", "acuity", "stage"},
	"episode":        {"type", "status", "stage"},
	"relationship":   {"type", "status", "characteristic"},
	"environment":    {"type", "characteristic", "category"},
	"record":         {"type", "status", "category"},
	"document":       {"type", "status", "category"},
	"note":           {"type", "category"},
	"observation":    {"type", "status", "acuity", "category"},
	"plan":           {"type", "status", "stage"},
	"condition":      {"type", "status", "acuity", "stage"},
	"characteristic": {"type", "category"},
	"role":           {"type", "status"},
	"stage":          {"type", "status"},
}

// Matrix holds the two independent static compatibility relations: which
// modifier may extend which (declared in source data), and which modifier
// is semantically meaningful for which node (curated above).
type Matrix struct {
	extends  map[string]map[string]bool
	semantic map[string]map[string]bool
}

// NewMatrix builds the compatibility matrix for store. Relation (a) comes
// from each modifier's declared ValidExtensions and is asymmetric: A
// listing B says nothing about B listing A. Relation (b) is the curated
// table filtered to handles the store actually declares.
func NewMatrix(store *Store) *Matrix {
	m := &Matrix{
		extends:  make(map[string]map[string]bool),
		semantic: make(map[string]map[string]bool),
	}

	for _, n := range store.ByCategory(CategoryModifier) {
		if len(n.ValidExtensions) == 0 {
			continue
		}
		set := make(map[string]bool, len(n.ValidExtensions))
		for _, ext := range n.ValidExtensions {
			set[ext] = true
		}
		m.extends[n.Handle] = set
	}

	for handle, mods := range semanticModifiers {
		if _, ok := store.Node(handle); !ok {
			continue
		}
		set := make(map[string]bool, len(mods))
		for _, mod := range mods {
			if store.IsModifier(mod) {
				set[mod] = true
			}
		}
		m.semantic[handle] = set
	}

	return m
}

// ModifierExtends reports whether modifier a declares modifier b as a
// valid extension. The relation is directional.
func (m *Matrix) ModifierExtends(a, b string) bool {
	return m.extends[a][b]
}

// ModifierValidForNode reports whether modifier is semantically meaningful
// for node. Unrecognized nodes return false rather than an error, so the
// query stays permissive during iterative modeling.
func (m *Matrix) ModifierValidForNode(node, modifier string) bool {
	return m.semantic[node][modifier]
}
