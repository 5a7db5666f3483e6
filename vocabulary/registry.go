package vocabulary

import "fmt"

// Registry bundles the store, the generated vocabulary, the compatibility
// matrix, the classifier and the suggestion engine into one immutable
// context object. It is assembled once at bootstrap and passed by
// reference to every consumer; after construction it is safe for
// unsynchronized concurrent reads.
type Registry struct {
	store      *Store
	derived    *Derived
	matrix     *Matrix
	classifier *Classifier
	suggester  *Suggester
}

// NewRegistry builds a Registry over the canonical node list.
func NewRegistry() (*Registry, error) {
	return NewRegistryFromNodes(CanonicalNodes())
}

// NewRegistryFromNodes builds a Registry over a custom node list. Tests
// use this to get a small, fresh vocabulary per test.
func NewRegistryFromNodes(nodes []Node) (*Registry, error) {
	store, err := NewStore(nodes)
	if err != nil {
		return nil, fmt.Errorf("build vocabulary store: %w", err)
	}
	derived := Generate(store)
	suggester := NewSuggester(store)
	return &Registry{
		store:      store,
		derived:    derived,
		matrix:     NewMatrix(store),
		classifier: NewClassifier(store, derived, suggester),
		suggester:  suggester,
	}, nil
}

// Store returns the underlying node store.
func (r *Registry) Store() *Store { return r.store }

// Derived returns the generated second-level vocabulary.
func (r *Registry) Derived() *Derived { return r.derived }

// Matrix returns the modifier compatibility matrix.
func (r *Registry) Matrix() *Matrix { return r.matrix }

// ValidateHandle classifies a single handle.
func (r *Registry) ValidateHandle(handle string) Classification {
	return r.classifier.Classify(handle)
}

// BatchResult partitions a batch of handles into valid and invalid.
type BatchResult struct {
	Valid   []string         `json:"valid"`
	Invalid []Classification `json:"invalid"`
}

// ValidateHandles classifies handles in order and partitions the results.
func (r *Registry) ValidateHandles(handles []string) BatchResult {
	res := BatchResult{}
	for _, h := range handles {
		c := r.ValidateHandle(h)
		if c.Valid {
			res.Valid = append(res.Valid, h)
		} else {
			res.Invalid = append(res.Invalid, c)
		}
	}
	return res
}

// CompoundAnalysis is the result of analyzing a handle as a compound.
type CompoundAnalysis struct {
	Handle        string `json:"handle"`
	ValidCompound bool   `json:"is_valid_compound"`
	ComponentA    string `json:"component_a,omitempty"`
	ComponentB    string `json:"component_b,omitempty"`
	Meaning       string `json:"semantic_meaning,omitempty"`
	Error         string `json:"error,omitempty"`
}

// AnalyzeCompound resolves handle against the generated compound set and
// reports its components and semantic meaning.
func (r *Registry) AnalyzeCompound(handle string) CompoundAnalysis {
	c, ok := r.derived.Compound(handle)
	if !ok {
		return CompoundAnalysis{
			Handle: handle,
			Error:  fmt.Sprintf("%q is not a generated compound", handle),
		}
	}
	return CompoundAnalysis{
		Handle:        handle,
		ValidCompound: true,
		ComponentA:    c.ComponentA,
		ComponentB:    c.ComponentB,
		Meaning:       c.Meaning,
	}
}

// ModifierValidForNode reports whether modifier is semantically meaningful
// for node, per the curated compatibility table.
func (r *Registry) ModifierValidForNode(node, modifier string) bool {
	return r.matrix.ModifierValidForNode(node, modifier)
}

// Suggest returns a best-effort suggestion for an unrecognized term.
func (r *Registry) Suggest(term string) string {
	return r.suggester.Suggest(term)
}
