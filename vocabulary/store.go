package vocabulary

import (
	"fmt"
	"regexp"
)

// handleRe constrains first-level node handles to single lowercase tokens.
// The separator is reserved for derived handles.
var handleRe = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Store is the immutable index over the fixed node list. All structures are
// derived from the declared nodes; nothing is authored independently.
type Store struct {
	nodes      []Node
	byHandle   map[string]int
	byCategory map[Category][]int
	modifiers  map[string]bool
	domains    map[string]bool
}

// NewStore builds a Store from nodes, preserving declaration order.
// It rejects duplicate handles, duplicate glyphs, malformed handles,
// unknown categories, and extension or domain references that do not
// resolve within the list.
func NewStore(nodes []Node) (*Store, error) {
	s := &Store{
		nodes:      make([]Node, len(nodes)),
		byHandle:   make(map[string]int, len(nodes)),
		byCategory: make(map[Category][]int),
		modifiers:  make(map[string]bool),
		domains:    make(map[string]bool),
	}
	copy(s.nodes, nodes)

	glyphs := make(map[string]string, len(nodes))
	for i, n := range s.nodes {
		if !handleRe.MatchString(n.Handle) {
			return nil, fmt.Errorf("node %d: invalid handle %q", i, n.Handle)
		}
		if !n.Category.Valid() {
			return nil, fmt.Errorf("node %q: unknown category %q", n.Handle, n.Category)
		}
		if _, dup := s.byHandle[n.Handle]; dup {
			return nil, fmt.Errorf("duplicate handle %q", n.Handle)
		}
		if n.Glyph == "" {
			return nil, fmt.Errorf("node %q: missing glyph", n.Handle)
		}
		if prev, dup := glyphs[n.Glyph]; dup {
			return nil, fmt.Errorf("node %q: glyph %q already used by %q", n.Handle, n.Glyph, prev)
		}
		glyphs[n.Glyph] = n.Handle

		s.byHandle[n.Handle] = i
		s.byCategory[n.Category] = append(s.byCategory[n.Category], i)
		switch n.Category {
		case CategoryModifier:
			s.modifiers[n.Handle] = true
		case CategoryDomain:
			s.domains[n.Handle] = true
		}
	}

	// Cross-references are checked after the handle index is complete so
	// forward references are legal.
	for _, n := range s.nodes {
		if n.Domain != "" && !s.domains[n.Domain] {
			return nil, fmt.Errorf("node %q: domain affinity %q is not a domain node", n.Handle, n.Domain)
		}
		for _, ext := range n.ValidExtensions {
			if n.Category != CategoryModifier {
				return nil, fmt.Errorf("node %q: only modifiers declare extensions", n.Handle)
			}
			if !s.modifiers[ext] {
				return nil, fmt.Errorf("node %q: extension %q is not a modifier", n.Handle, ext)
			}
		}
	}

	return s, nil
}

// Node returns the node for handle. The second return is false when the
// handle is not declared; absent entries are not an error condition here.
func (s *Store) Node(handle string) (Node, bool) {
	i, ok := s.byHandle[handle]
	if !ok {
		return Node{}, false
	}
	return s.nodes[i], true
}

// Nodes returns all nodes in declaration order.
func (s *Store) Nodes() []Node {
	nodes := make([]Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// ByCategory returns the nodes of category c in declaration order.
func (s *Store) ByCategory(c Category) []Node {
	idx := s.byCategory[c]
	nodes := make([]Node, 0, len(idx))
	for _, i := range idx {
		nodes = append(nodes, s.nodes[i])
	}
	return nodes
}

// IsModifier reports whether handle names a modifier node.
func (s *Store) IsModifier(handle string) bool { return s.modifiers[handle] }

// IsDomain reports whether handle names a domain node.
func (s *Store) IsDomain(handle string) bool { return s.domains[handle] }

// Len returns the number of declared nodes.
func (s *Store) Len() int { return len(s.nodes) }
