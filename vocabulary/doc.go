// Package vocabulary provides the canonical vocabulary for the semvocab
// modeling notation: the fixed first-level node list, the generated
// second-level compounds and type taxonomies, and the classification and
// suggestion machinery used by the validation gateway.
//
// # Levels
//
// The vocabulary is generative. Level 1 is the fixed node list declared in
// nodes.go. Level 2 is derived once from that list: every ordered pair of
// distinct non-domain nodes becomes a compound ("person_record"), and every
// node and compound gains a type taxonomy ("person_type",
// "person_record_type"). Level 3 handles are never enumerated; they are
// recognized by pattern ("person_characteristic_type_gender") against a
// valid level-1 or level-2 parent.
//
// # Bootstrap
//
// All data is assembled once and is immutable afterwards:
//
//	reg, err := vocabulary.NewRegistry()
//	if err != nil {
//	    return err
//	}
//	result := reg.ValidateHandle("person_record")
//
// A Registry may be shared freely across goroutines. Tests that need a
// small vocabulary build one with NewRegistryFromNodes.
//
// # Semstreams Integration
//
// predicates.go registers semvocab.node.* and semvocab.rel.* predicates
// with the semstreams vocabulary registry, including SKOS and Dublin Core
// IRI mappings, so vocabulary entries can be exported as RDF alongside
// other platform data (see the export package).
package vocabulary
