package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semvocab/export"
	"github.com/c360studio/semvocab/rules"
	"github.com/c360studio/semvocab/vocabulary"
)

func newRegistry(t *testing.T) *vocabulary.Registry {
	t.Helper()
	reg, err := vocabulary.NewRegistry()
	require.NoError(t, err)
	return reg
}

func TestFormatRegistry(t *testing.T) {
	for _, f := range []export.Format{export.FormatMarkdown, export.FormatTurtle, export.FormatNTriples, export.FormatJSONLD} {
		info, ok := export.GetFormatInfo(f)
		require.True(t, ok, "format %s missing from registry", f)
		assert.Equal(t, f, info.Name)
		assert.NotEmpty(t, info.MIMEType)
		assert.NotEmpty(t, info.Extension)
	}

	_, ok := export.GetFormatInfo("xml")
	assert.False(t, ok)
}

func TestWriteMarkdown(t *testing.T) {
	reg := newRegistry(t)

	var sb strings.Builder
	require.NoError(t, export.WriteMarkdown(&sb, reg, rules.NewCatalog()))
	doc := sb.String()

	// Every node appears exactly once in its table row.
	for _, n := range reg.Store().Nodes() {
		assert.Equal(t, 1, strings.Count(doc, "| `"+n.Handle+"` |"),
			"node %s should appear exactly once", n.Handle)
	}
	assert.Contains(t, doc, "## Generated Compounds")
	assert.Contains(t, doc, "`person_record`")
	// Rule lines render with plain ASCII punctuation.
	assert.Contains(t, doc, "- **R06 - Glyph concatenation order**:")
	assert.NotContains(t, doc, "—")
}

func TestRDFExportTurtle(t *testing.T) {
	reg := newRegistry(t)
	e := export.NewRDFExporter(reg)

	ttl, err := e.Export(export.FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, ttl, "@prefix skos:")
	assert.Contains(t, ttl, vocabulary.ConceptIRI("person"))
	assert.Contains(t, ttl, `"Person"`)
	// Taxonomies point at their parent via skos:broader.
	assert.Contains(t, ttl, export.SkosBroader)
	// Concepts carry their ontology class alongside skos:Concept.
	assert.Contains(t, ttl, "@prefix sv:")
	assert.Contains(t, ttl, vocabulary.ClassNode)
}

func TestRDFExportNTriples(t *testing.T) {
	reg := newRegistry(t)
	e := export.NewRDFExporter(reg)

	nt, err := e.Export(export.FormatNTriples)
	require.NoError(t, err)

	// One skos:Concept statement per concept.
	total := reg.Store().Len() + reg.Derived().CompoundCount() + reg.Derived().TaxonomyCount()
	typeCount := strings.Count(nt, export.SkosConcept)
	assert.Equal(t, total, typeCount)

	// Each concept is also typed with its ontology class.
	assert.Equal(t, reg.Store().Len(), strings.Count(nt, "<"+vocabulary.ClassNode+">"))
	assert.Equal(t, reg.Derived().CompoundCount(), strings.Count(nt, "<"+vocabulary.ClassCompound+">"))
	assert.Equal(t, reg.Derived().TaxonomyCount(), strings.Count(nt, "<"+vocabulary.ClassTypeTaxonomy+">"))
}

func TestRDFExportJSONLD(t *testing.T) {
	reg := newRegistry(t)
	e := export.NewRDFExporter(reg)

	doc, err := e.Export(export.FormatJSONLD)
	require.NoError(t, err)
	assert.Contains(t, doc, `"@graph"`)
	assert.Contains(t, doc, vocabulary.ConceptIRI("person_record"))
	assert.Contains(t, doc, vocabulary.ClassCompound)
}

func TestRDFExportDeterministic(t *testing.T) {
	reg := newRegistry(t)

	first, err := export.NewRDFExporter(reg).Export(export.FormatTurtle)
	require.NoError(t, err)
	second, err := export.NewRDFExporter(reg).Export(export.FormatTurtle)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRDFExportUnsupportedFormat(t *testing.T) {
	reg := newRegistry(t)
	_, err := export.NewRDFExporter(reg).Export(export.FormatMarkdown)
	assert.Error(t, err)
}
