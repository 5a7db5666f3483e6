package vocabulary

import (
	streams "github.com/c360studio/semstreams/vocabulary"
)

// Node predicates describe atomic vocabulary entries when they are
// published as graph data.
const (
	// NodeName is the node display name.
	NodeName = "semvocab.node.name"

	// NodeGlyph is the node display symbol.
	NodeGlyph = "semvocab.node.glyph"

	// NodeCategory is the node category (domain, central, context,
	// content, modifier).
	NodeCategory = "semvocab.node.category"

	// NodeDescription is the node description.
	NodeDescription = "semvocab.node.description"

	// NodeDomain links a node to its domain affinity.
	NodeDomain = "semvocab.node.domain"
)

// Relationship predicates describe generated compounds and taxonomies.
const (
	// RelComponentA links a compound to its first component node.
	RelComponentA = "semvocab.rel.component_a"

	// RelComponentB links a compound to its second component node.
	RelComponentB = "semvocab.rel.component_b"

	// RelMeaning is the generated semantic-meaning string of a compound.
	RelMeaning = "semvocab.rel.meaning"

	// RelTaxonomyOf links a type taxonomy to its parent node or compound.
	RelTaxonomyOf = "semvocab.rel.taxonomy_of"
)

func init() {
	streams.Register(NodeName,
		streams.WithDescription("Display name of a canonical vocabulary node"),
		streams.WithDataType("string"),
		streams.WithIRI(streams.SkosPrefLabel))

	streams.Register(NodeGlyph,
		streams.WithDescription("Unique display symbol of a canonical vocabulary node"),
		streams.WithDataType("string"),
		streams.WithIRI(streams.SkosNotation))

	streams.Register(NodeCategory,
		streams.WithDescription("Category of a canonical vocabulary node"),
		streams.WithDataType("string"))

	streams.Register(NodeDescription,
		streams.WithDescription("Description of a canonical vocabulary node"),
		streams.WithDataType("string"),
		streams.WithIRI(streams.RdfsComment))

	streams.Register(NodeDomain,
		streams.WithDescription("Domain affinity of a canonical vocabulary node"),
		streams.WithDataType("string"))

	streams.Register(RelComponentA,
		streams.WithDescription("First component of a directed compound"))

	streams.Register(RelComponentB,
		streams.WithDescription("Second component of a directed compound"))

	streams.Register(RelMeaning,
		streams.WithDescription("Generated semantic meaning of a directed compound"),
		streams.WithDataType("string"),
		streams.WithIRI(streams.RdfsComment))

	streams.Register(RelTaxonomyOf,
		streams.WithDescription("Parent node or compound of a type taxonomy"))
}
