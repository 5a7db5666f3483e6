package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semvocab/gateway"
	"github.com/c360studio/semvocab/rules"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	gc, err := cfg.GatewayConfiguration()
	require.NoError(t, err)
	assert.Equal(t, gateway.StrictnessWarn, gc.Strictness)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gateway.Strictness = "loose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Export.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Gateway.EnabledCategories = []string{"vibes"}
	assert.Error(t, cfg.Validate())
}

func TestMergePrecedence(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Gateway: GatewayConfig{Strictness: "strict", SkipRules: []string{"T02"}},
		Log:     LogConfig{Level: "debug"},
	})

	assert.Equal(t, "strict", base.Gateway.Strictness)
	assert.Equal(t, []string{"T02"}, base.Gateway.SkipRules)
	assert.Equal(t, "debug", base.Log.Level)
	// Untouched fields keep their defaults.
	assert.Equal(t, "markdown", base.Export.Format)

	base.Merge(nil) // no-op
	assert.Equal(t, "strict", base.Gateway.Strictness)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "semvocab.yaml")

	cfg := DefaultConfig()
	cfg.Gateway.Strictness = "report"
	cfg.Gateway.EnabledCategories = []string{"taxonomy"}
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report", loaded.Gateway.Strictness)

	gc, err := loaded.GatewayConfiguration()
	require.NoError(t, err)
	assert.Equal(t, []rules.Category{rules.CategoryTaxonomy}, gc.EnabledCategories)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gateway: [nope"), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
