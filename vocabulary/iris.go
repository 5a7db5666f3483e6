package vocabulary

// Namespace is the base IRI prefix for semvocab vocabulary terms.
const Namespace = "https://semvocab.c360.io/ontology/"

// ConceptNamespace is the base IRI for individual vocabulary concepts.
const ConceptNamespace = "https://semvocab.c360.io/concept/"

// Class IRIs define the types of exported vocabulary concepts.
const (
	// ClassNode represents an atomic first-level vocabulary node.
	ClassNode = Namespace + "Node"

	// ClassCompound represents a generated directed compound.
	ClassCompound = Namespace + "Compound"

	// ClassTypeTaxonomy represents a generated type taxonomy.
	ClassTypeTaxonomy = Namespace + "TypeTaxonomy"
)

// ConceptIRI returns the IRI for a node, compound or taxonomy handle.
func ConceptIRI(handle string) string {
	return ConceptNamespace + handle
}
