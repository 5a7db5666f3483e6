package rules_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semvocab/rules"
)

func TestDefinitionFound(t *testing.T) {
	c := rules.NewCatalog()

	r, err := c.Definition("R06")
	require.NoError(t, err)
	assert.Equal(t, "R06", r.ID)
	assert.Equal(t, rules.CategoryRelationship, r.Category)
	assert.NotEmpty(t, r.Description)
}

func TestDefinitionNotFound(t *testing.T) {
	c := rules.NewCatalog()

	_, err := c.Definition("ZZ99")
	require.Error(t, err)

	var nf *rules.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "ZZ99", nf.ID)
	assert.Equal(t, c.IDs(), nf.ValidIDs, "error enumerates every valid id")
	assert.Contains(t, err.Error(), "R06")
}

func TestCatalogIndexes(t *testing.T) {
	c := rules.NewCatalog()

	assert.Equal(t, c.Len(), len(c.All()))
	seen := make(map[string]bool)
	total := 0
	for _, cat := range rules.Categories {
		for _, r := range c.ByCategory(cat) {
			assert.Equal(t, cat, r.Category)
			assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
			seen[r.ID] = true
			total++
		}
	}
	assert.Equal(t, c.Len(), total, "every rule belongs to exactly one category")
}

func TestIDsAreCategoryPrefixed(t *testing.T) {
	c := rules.NewCatalog()

	for _, r := range c.All() {
		prefix := strings.ToUpper(string(r.Category[0]))
		assert.True(t, strings.HasPrefix(r.ID, prefix),
			"rule %s should carry prefix %s for category %s", r.ID, prefix, r.Category)
	}
}

func TestGatewayRuleIDsExist(t *testing.T) {
	c := rules.NewCatalog()

	for _, id := range []string{rules.RuleUnknownHandle, rules.RuleMissingTypeTaxonomy, rules.RuleDeepNesting} {
		_, err := c.Definition(id)
		assert.NoError(t, err, "gateway references rule %s", id)
	}
}
