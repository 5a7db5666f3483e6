package vocabulary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semvocab/vocabulary"
)

func testNodes() []vocabulary.Node {
	return []vocabulary.Node{
		{Handle: "health", Name: "Health", Glyph: "⚕", Category: vocabulary.CategoryDomain},
		{Handle: "person", Name: "Person", Glyph: "👤", Category: vocabulary.CategoryCentral},
		{Handle: "record", Name: "Record", Glyph: "📋", Category: vocabulary.CategoryContent},
		{Handle: "type", Name: "Type", Glyph: "🏷", Category: vocabulary.CategoryModifier},
		{Handle: "status", Name: "Status", Glyph: "🚦", Category: vocabulary.CategoryModifier,
			ValidExtensions: []string{"type"}},
	}
}

func TestNewStoreIndexes(t *testing.T) {
	s, err := vocabulary.NewStore(testNodes())
	require.NoError(t, err)

	n, ok := s.Node("person")
	require.True(t, ok)
	assert.Equal(t, vocabulary.CategoryCentral, n.Category)
	assert.Equal(t, "👤", n.Glyph)

	_, ok = s.Node("missing")
	assert.False(t, ok, "absent handles are a not-found, not an error")

	assert.True(t, s.IsModifier("status"))
	assert.False(t, s.IsModifier("person"))
	assert.True(t, s.IsDomain("health"))
	assert.False(t, s.IsDomain("record"))
	assert.Equal(t, 5, s.Len())
}

func TestNewStorePreservesDeclarationOrder(t *testing.T) {
	s, err := vocabulary.NewStore(testNodes())
	require.NoError(t, err)

	var handles []string
	for _, n := range s.Nodes() {
		handles = append(handles, n.Handle)
	}
	assert.Equal(t, []string{"health", "person", "record", "type", "status"}, handles)

	mods := s.ByCategory(vocabulary.CategoryModifier)
	require.Len(t, mods, 2)
	assert.Equal(t, "type", mods[0].Handle)
	assert.Equal(t, "status", mods[1].Handle)
}

func TestNewStoreRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]vocabulary.Node) []vocabulary.Node
	}{
		{"duplicate handle", func(ns []vocabulary.Node) []vocabulary.Node {
			dup := ns[1]
			dup.Glyph = "🆕"
			return append(ns, dup)
		}},
		{"duplicate glyph", func(ns []vocabulary.Node) []vocabulary.Node {
			return append(ns, vocabulary.Node{
				Handle: "extra", Name: "Extra", Glyph: ns[0].Glyph,
				Category: vocabulary.CategoryContent,
			})
		}},
		{"handle with separator", func(ns []vocabulary.Node) []vocabulary.Node {
			ns[1].Handle = "per_son"
			return ns
		}},
		{"uppercase handle", func(ns []vocabulary.Node) []vocabulary.Node {
			ns[1].Handle = "Person"
			return ns
		}},
		{"unknown category", func(ns []vocabulary.Node) []vocabulary.Node {
			ns[1].Category = "weird"
			return ns
		}},
		{"missing glyph", func(ns []vocabulary.Node) []vocabulary.Node {
			ns[1].Glyph = ""
			return ns
		}},
		{"extension on non-modifier", func(ns []vocabulary.Node) []vocabulary.Node {
			ns[1].ValidExtensions = []string{"type"}
			return ns
		}},
		{"extension to non-modifier", func(ns []vocabulary.Node) []vocabulary.Node {
			ns[4].ValidExtensions = []string{"person"}
			return ns
		}},
		{"dangling domain affinity", func(ns []vocabulary.Node) []vocabulary.Node {
			ns[1].Domain = "finance"
			return ns
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vocabulary.NewStore(tt.mutate(testNodes()))
			assert.Error(t, err)
		})
	}
}

func TestCanonicalNodesAreWellFormed(t *testing.T) {
	s, err := vocabulary.NewStore(vocabulary.CanonicalNodes())
	require.NoError(t, err)

	// The canonical list covers every category.
	for _, c := range vocabulary.Categories {
		assert.NotEmpty(t, s.ByCategory(c), "category %s has no nodes", c)
	}

	// The classification modifier must be present.
	n, ok := s.Node(vocabulary.TypeModifier)
	require.True(t, ok)
	assert.Equal(t, vocabulary.CategoryModifier, n.Category)
}
