package vocabulary

import "fmt"

// Compound is an ordered pairing of two distinct non-domain nodes. Order
// encodes direction: "person_record" and "record_person" are distinct
// entries with independently generated meanings.
type Compound struct {
	// Handle is "<componentA>_<componentB>".
	Handle string `json:"handle"`

	// ComponentA and ComponentB are the component node handles.
	ComponentA string `json:"component_a"`
	ComponentB string `json:"component_b"`

	// Glyph concatenates the component glyphs in handle order.
	Glyph string `json:"glyph"`

	// Meaning is the generated semantic-meaning string.
	Meaning string `json:"meaning"`

	// Taxonomy is the handle of the compound's type taxonomy.
	Taxonomy string `json:"taxonomy"`
}

// TypeTaxonomy is the classification companion of a node or compound.
type TypeTaxonomy struct {
	// Handle is "<parent>_type".
	Handle string `json:"handle"`

	// Parent is the node or compound handle this taxonomy classifies.
	Parent string `json:"parent"`

	// Name is the display name, derived from the parent name.
	Name string `json:"name"`

	// Glyph is the parent glyph followed by the type modifier glyph.
	Glyph string `json:"glyph"`

	// Category is inherited from the parent; for compound parents, from
	// the compound's first component.
	Category Category `json:"category"`
}

// Derived holds the complete generated second-level vocabulary. It is
// produced once by Generate and never mutated afterwards.
type Derived struct {
	compounds     []Compound
	compoundIndex map[string]int
	taxonomies    []TypeTaxonomy
	taxonomyIndex map[string]int
}

// Generate derives the full second-level vocabulary from store. The three
// phases are strictly ordered: node taxonomies, then the directed compound
// product plus declared modifier extensions, then compound taxonomies,
// which read each compound's first component category and therefore need
// the compound set complete. Output order is a pure function of node
// declaration order, so regeneration is byte-identical and idempotent.
func Generate(store *Store) *Derived {
	d := &Derived{
		compoundIndex: make(map[string]int),
		taxonomyIndex: make(map[string]int),
	}

	typeGlyph := ""
	if t, ok := store.Node(TypeModifier); ok {
		typeGlyph = t.Glyph
	}

	// Phase 1: a type taxonomy for every node except the type modifier
	// itself. A classification node must not classify itself.
	for _, n := range store.Nodes() {
		if n.Handle == TypeModifier {
			continue
		}
		d.addTaxonomy(TypeTaxonomy{
			Handle:   n.Handle + TypeSuffix,
			Parent:   n.Handle,
			Name:     n.Name + " Type",
			Glyph:    n.Glyph + typeGlyph,
			Category: n.Category,
		})
	}

	// Phase 2: the full directed product over non-domain nodes,
	// n*(n-1) compounds for n eligible nodes.
	eligible := make([]Node, 0, store.Len())
	for _, n := range store.Nodes() {
		if n.Category != CategoryDomain {
			eligible = append(eligible, n)
		}
	}
	for _, a := range eligible {
		for _, b := range eligible {
			if a.Handle == b.Handle {
				continue
			}
			d.addCompound(Compound{
				Handle:     a.Handle + Separator + b.Handle,
				ComponentA: a.Handle,
				ComponentB: b.Handle,
				Glyph:      a.Glyph + b.Glyph,
				Meaning:    fmt.Sprintf("%s related to %s", a.Name, b.Name),
				Taxonomy:   a.Handle + Separator + b.Handle + TypeSuffix,
			})
		}
	}

	// Phase 2b: declared modifier extensions. The directed product above
	// normally covers these pairs already; the pass guards vocabularies
	// where it does not, and supplies the extension-specific meaning when
	// a pair is emitted here.
	for _, a := range store.ByCategory(CategoryModifier) {
		for _, ext := range a.ValidExtensions {
			handle := a.Handle + Separator + ext
			if _, exists := d.compoundIndex[handle]; exists {
				continue
			}
			b, ok := store.Node(ext)
			if !ok {
				continue
			}
			d.addCompound(Compound{
				Handle:     handle,
				ComponentA: a.Handle,
				ComponentB: b.Handle,
				Glyph:      a.Glyph + b.Glyph,
				Meaning:    fmt.Sprintf("%s of %s", b.Name, a.Name),
				Taxonomy:   handle + TypeSuffix,
			})
		}
	}

	// Phase 3: a type taxonomy for every compound, unless a taxonomy of
	// that handle already exists. The guard keeps regeneration idempotent
	// and never overwrites a node-level taxonomy that shares the name.
	for _, c := range d.compounds {
		if _, exists := d.taxonomyIndex[c.Taxonomy]; exists {
			continue
		}
		category := Category("")
		if first, ok := store.Node(c.ComponentA); ok {
			category = first.Category
		}
		d.addTaxonomy(TypeTaxonomy{
			Handle:   c.Taxonomy,
			Parent:   c.Handle,
			Name:     c.Meaning + " Type",
			Glyph:    c.Glyph + typeGlyph,
			Category: category,
		})
	}

	return d
}

func (d *Derived) addCompound(c Compound) {
	d.compoundIndex[c.Handle] = len(d.compounds)
	d.compounds = append(d.compounds, c)
}

func (d *Derived) addTaxonomy(t TypeTaxonomy) {
	d.taxonomyIndex[t.Handle] = len(d.taxonomies)
	d.taxonomies = append(d.taxonomies, t)
}

// Compound returns the generated compound for handle.
func (d *Derived) Compound(handle string) (Compound, bool) {
	i, ok := d.compoundIndex[handle]
	if !ok {
		return Compound{}, false
	}
	return d.compounds[i], true
}

// Taxonomy returns the generated type taxonomy for handle.
func (d *Derived) Taxonomy(handle string) (TypeTaxonomy, bool) {
	i, ok := d.taxonomyIndex[handle]
	if !ok {
		return TypeTaxonomy{}, false
	}
	return d.taxonomies[i], true
}

// Compounds returns all compounds in generation order.
func (d *Derived) Compounds() []Compound {
	out := make([]Compound, len(d.compounds))
	copy(out, d.compounds)
	return out
}

// Taxonomies returns all type taxonomies in generation order.
func (d *Derived) Taxonomies() []TypeTaxonomy {
	out := make([]TypeTaxonomy, len(d.taxonomies))
	copy(out, d.taxonomies)
	return out
}

// CompoundCount returns the number of generated compounds.
func (d *Derived) CompoundCount() int { return len(d.compounds) }

// TaxonomyCount returns the number of generated type taxonomies.
func (d *Derived) TaxonomyCount() int { return len(d.taxonomies) }
