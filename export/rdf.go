package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	streams "github.com/c360studio/semstreams/vocabulary"

	"github.com/c360studio/semvocab/vocabulary"
)

// SKOS class and property IRIs not covered by the semstreams standards
// constants.
const (
	SkosConcept    = "http://www.w3.org/2004/02/skos/core#Concept"
	SkosBroader    = "http://www.w3.org/2004/02/skos/core#broader"
	SkosRelated    = "http://www.w3.org/2004/02/skos/core#related"
	SkosDefinition = "http://www.w3.org/2004/02/skos/core#definition"
	SkosInScheme   = "http://www.w3.org/2004/02/skos/core#inScheme"
	rdfType        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// Triple is one exported semantic statement. IRI is true when the object
// is a resource rather than a literal.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	IRI       bool
}

// Concept is one exportable vocabulary entry with its triples.
type Concept struct {
	Handle  string
	Triples []Triple
}

// RDFExporter serializes a vocabulary registry as SKOS concepts.
type RDFExporter struct {
	concepts []Concept
	prefixes map[string]string
}

// NewRDFExporter builds an exporter over reg's nodes, compounds and type
// taxonomies. Concept order follows declaration and generation order, so
// repeated exports are byte-identical.
func NewRDFExporter(reg *vocabulary.Registry) *RDFExporter {
	e := &RDFExporter{prefixes: defaultPrefixes()}

	for _, n := range reg.Store().Nodes() {
		iri := vocabulary.ConceptIRI(n.Handle)
		triples := []Triple{
			{iri, rdfType, SkosConcept, true},
			{iri, rdfType, vocabulary.ClassNode, true},
			{iri, streams.SkosPrefLabel, n.Name, false},
			{iri, streams.SkosNotation, n.Glyph, false},
			{iri, streams.DcIdentifier, n.Handle, false},
		}
		if n.Description != "" {
			triples = append(triples, Triple{iri, SkosDefinition, n.Description, false})
		}
		if n.Domain != "" {
			triples = append(triples, Triple{iri, SkosInScheme, vocabulary.ConceptIRI(n.Domain), true})
		}
		e.concepts = append(e.concepts, Concept{Handle: n.Handle, Triples: triples})
	}

	for _, c := range reg.Derived().Compounds() {
		iri := vocabulary.ConceptIRI(c.Handle)
		e.concepts = append(e.concepts, Concept{Handle: c.Handle, Triples: []Triple{
			{iri, rdfType, SkosConcept, true},
			{iri, rdfType, vocabulary.ClassCompound, true},
			{iri, streams.SkosPrefLabel, c.Meaning, false},
			{iri, streams.SkosNotation, c.Glyph, false},
			{iri, SkosRelated, vocabulary.ConceptIRI(c.ComponentA), true},
			{iri, SkosRelated, vocabulary.ConceptIRI(c.ComponentB), true},
		}})
	}

	for _, t := range reg.Derived().Taxonomies() {
		iri := vocabulary.ConceptIRI(t.Handle)
		e.concepts = append(e.concepts, Concept{Handle: t.Handle, Triples: []Triple{
			{iri, rdfType, SkosConcept, true},
			{iri, rdfType, vocabulary.ClassTypeTaxonomy, true},
			{iri, streams.SkosPrefLabel, t.Name, false},
			{iri, SkosBroader, vocabulary.ConceptIRI(t.Parent), true},
		}})
	}

	return e
}

// defaultPrefixes returns the namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
		"skos":    "http://www.w3.org/2004/02/skos/core#",
		"dc":      "http://purl.org/dc/terms/",
		"sv":      vocabulary.Namespace,
		"concept": vocabulary.ConceptNamespace,
	}
}

// Export serializes all concepts to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD(), nil
	default:
		return "", fmt.Errorf("unsupported RDF format: %s", format)
	}
}

func (e *RDFExporter) toTurtle() string {
	var sb strings.Builder

	prefixes := make([]string, 0, len(e.prefixes))
	for p := range e.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p, e.prefixes[p])
	}
	sb.WriteString("\n")

	for _, concept := range e.concepts {
		for i, t := range concept.Triples {
			if i == 0 {
				fmt.Fprintf(&sb, "<%s>\n", t.Subject)
			}
			fmt.Fprintf(&sb, "    <%s> %s", t.Predicate, formatObject(t))
			if i < len(concept.Triples)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (e *RDFExporter) toNTriples() string {
	var sb strings.Builder
	for _, concept := range e.concepts {
		for _, t := range concept.Triples {
			fmt.Fprintf(&sb, "<%s> <%s> %s .\n", t.Subject, t.Predicate, formatObject(t))
		}
	}
	return sb.String()
}

func (e *RDFExporter) toJSONLD() string {
	graph := make([]map[string]any, 0, len(e.concepts))
	for _, concept := range e.concepts {
		entry := map[string]any{
			"@id": vocabulary.ConceptIRI(concept.Handle),
		}
		var types []string
		for _, t := range concept.Triples {
			if t.Predicate == rdfType {
				types = append(types, t.Object)
				continue
			}
			var obj any = t.Object
			if t.IRI {
				obj = map[string]any{"@id": t.Object}
			}
			// Repeated predicates (skos:related) collect into a list.
			switch existing := entry[t.Predicate].(type) {
			case nil:
				entry[t.Predicate] = obj
			case []any:
				entry[t.Predicate] = append(existing, obj)
			default:
				entry[t.Predicate] = []any{existing, obj}
			}
		}
		switch len(types) {
		case 0:
		case 1:
			entry["@type"] = types[0]
		default:
			entry["@type"] = types
		}
		graph = append(graph, entry)
	}

	doc := map[string]any{
		"@context": e.prefixes,
		"@graph":   graph,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// Inputs are plain strings and maps; marshaling cannot fail.
		return ""
	}
	return string(out) + "\n"
}

// formatObject renders a triple object for Turtle and N-Triples.
func formatObject(t Triple) string {
	if t.IRI {
		return fmt.Sprintf("<%s>", t.Object)
	}
	return fmt.Sprintf("%q", t.Object)
}
