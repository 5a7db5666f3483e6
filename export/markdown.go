package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/semvocab/rules"
	"github.com/c360studio/semvocab/vocabulary"
)

// categoryTitles maps categories to their reference-document headings.
var categoryTitles = map[vocabulary.Category]string{
	vocabulary.CategoryDomain:   "Domain Nodes",
	vocabulary.CategoryCentral:  "Central Nodes",
	vocabulary.CategoryContext:  "Context Nodes",
	vocabulary.CategoryContent:  "Content Nodes",
	vocabulary.CategoryModifier: "Modifier Nodes",
}

// WriteMarkdown renders the complete vocabulary reference document:
// every node by category, the generated compound and taxonomy summary,
// and the rule catalog. Output order is deterministic.
func WriteMarkdown(w io.Writer, reg *vocabulary.Registry, catalog *rules.Catalog) error {
	var sb strings.Builder

	sb.WriteString("# Canonical Vocabulary Reference\n\n")
	fmt.Fprintf(&sb, "%d nodes, %d generated compounds, %d type taxonomies.\n\n",
		reg.Store().Len(), reg.Derived().CompoundCount(), reg.Derived().TaxonomyCount())

	for _, cat := range vocabulary.Categories {
		nodes := reg.Store().ByCategory(cat)
		if len(nodes) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "## %s\n\n", categoryTitles[cat])
		sb.WriteString("| Handle | Glyph | Name | Description |\n")
		sb.WriteString("|--------|-------|------|-------------|\n")
		for _, n := range nodes {
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", n.Handle, n.Glyph, n.Name, n.Description)
		}
		sb.WriteString("\n")

		if cat == vocabulary.CategoryModifier {
			sb.WriteString("### Declared Extensions\n\n")
			for _, n := range nodes {
				if len(n.ValidExtensions) > 0 {
					fmt.Fprintf(&sb, "- `%s` may precede: `%s`\n", n.Handle, strings.Join(n.ValidExtensions, "`, `"))
				}
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("## Generated Compounds\n\n")
	sb.WriteString("Order encodes direction: `a_b` and `b_a` are distinct.\n\n")
	sb.WriteString("| Handle | Glyph | Meaning |\n")
	sb.WriteString("|--------|-------|--------|\n")
	for _, c := range reg.Derived().Compounds() {
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", c.Handle, c.Glyph, c.Meaning)
	}
	sb.WriteString("\n")

	sb.WriteString("## Validation Rules\n\n")
	for _, cat := range rules.Categories {
		catRules := catalog.ByCategory(cat)
		if len(catRules) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "### %s\n\n", strings.ToUpper(string(cat[0]))+string(cat[1:]))
		for _, r := range catRules {
			fmt.Fprintf(&sb, "- **%s - %s**: %s\n", r.ID, r.Name, r.Description)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
