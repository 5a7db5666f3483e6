package gateway_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semvocab/gateway"
	"github.com/c360studio/semvocab/rules"
	"github.com/c360studio/semvocab/vocabulary"
)

func newGateway(t *testing.T, opts ...gateway.Option) *gateway.Gateway {
	t.Helper()
	reg, err := vocabulary.NewRegistry()
	require.NoError(t, err)
	return gateway.New(reg, rules.NewCatalog(), opts...)
}

func items(handles ...string) []gateway.Item {
	out := make([]gateway.Item, 0, len(handles))
	for _, h := range handles {
		out = append(out, gateway.Item{Handle: h})
	}
	return out
}

func TestValidateCheckpointUnknownStage(t *testing.T) {
	g := newGateway(t)
	_, err := g.ValidateCheckpoint("deploy", nil, nil)
	assert.Error(t, err)
}

func TestPassThroughStages(t *testing.T) {
	g := newGateway(t)

	for _, stage := range []gateway.Stage{gateway.StageIngest, gateway.StageExtract, gateway.StageExport} {
		res, err := g.ValidateCheckpoint(stage, items("total_nonsense"), items("more_nonsense"))
		require.NoError(t, err)
		assert.True(t, res.Passed, "stage %s performs no checks", stage)
		assert.Empty(t, res.Errors)
		assert.Equal(t, 1, res.Stats.ModulesChecked)
		assert.Equal(t, 1, res.Stats.TaxonomiesChecked)
	}
}

func TestMapStageClassifiesHandles(t *testing.T) {
	g := newGateway(t)

	res, err := g.ValidateCheckpoint(gateway.StageMap,
		items("person", "person_record", "patient"),
		items("person_record_type"))
	require.NoError(t, err)

	assert.False(t, res.Passed)
	require.Len(t, res.Errors, 1)
	e := res.Errors[0]
	assert.Equal(t, rules.RuleUnknownHandle, e.RuleID)
	assert.Equal(t, "patient", e.Handle)
	assert.Contains(t, e.Suggestion, `"person"`)
}

func TestBuildStageRequiresCompoundTaxonomy(t *testing.T) {
	g := newGateway(t)

	// One compound-looking module, no sibling taxonomy anywhere in the set.
	res, err := g.ValidateCheckpoint(gateway.StageBuild, items("foo_bar"), nil)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, rules.RuleMissingTypeTaxonomy, res.Errors[0].RuleID)
	assert.Equal(t, "foo_bar", res.Errors[0].Handle)

	// The sibling may come from the taxonomy set.
	res, err = g.ValidateCheckpoint(gateway.StageBuild, items("foo_bar"), items("foo_bar_type"))
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Empty(t, res.Errors)
}

func TestBuildStageDeepNestingWarning(t *testing.T) {
	g := newGateway(t)

	deep := "person_condition_type_a_type_b_type_c_type"
	res, err := g.ValidateCheckpoint(gateway.StageBuild, nil, items(deep))
	require.NoError(t, err)

	// Warnings never affect pass/fail.
	assert.True(t, res.Passed)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, rules.RuleDeepNesting, res.Warnings[0].RuleID)
	assert.Equal(t, deep, res.Warnings[0].Handle)

	// At the threshold, no warning.
	res, err = g.ValidateCheckpoint(gateway.StageBuild, nil, items("person_condition_type_a_type_b_type"))
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}

func TestStrictnessPolicies(t *testing.T) {
	modules := items("patient")

	t.Run("strict", func(t *testing.T) {
		g := newGateway(t, gateway.WithConfiguration(gateway.Configuration{Strictness: gateway.StrictnessStrict}))
		res, err := g.ValidateCheckpoint(gateway.StageMap, modules, nil)
		require.Error(t, err)

		var se *gateway.StrictnessError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, gateway.StageMap, se.Stage)
		assert.Equal(t, 1, se.ErrorCount)
		assert.Equal(t, rules.RuleUnknownHandle, se.First.RuleID)

		// The stage completed before escalation; the result is whole.
		require.Len(t, res.Errors, 1)
	})

	t.Run("warn", func(t *testing.T) {
		g := newGateway(t, gateway.WithLogger(slog.Default()))
		res, err := g.ValidateCheckpoint(gateway.StageMap, modules, nil)
		require.NoError(t, err)
		assert.False(t, res.Passed)
	})

	t.Run("report", func(t *testing.T) {
		g := newGateway(t, gateway.WithConfiguration(gateway.Configuration{Strictness: gateway.StrictnessReport}))
		res, err := g.ValidateCheckpoint(gateway.StageMap, modules, nil)
		require.NoError(t, err)
		assert.False(t, res.Passed)
	})
}

func TestConfigureFilters(t *testing.T) {
	g := newGateway(t)

	require.NoError(t, g.Configure(gateway.Configuration{
		Strictness: gateway.StrictnessReport,
		SkipRules:  []string{rules.RuleMissingTypeTaxonomy},
	}))
	res, err := g.ValidateCheckpoint(gateway.StageBuild, items("foo_bar"), nil)
	require.NoError(t, err)
	assert.True(t, res.Passed, "skipped rules produce no findings")

	require.NoError(t, g.Configure(gateway.Configuration{
		Strictness:        gateway.StrictnessReport,
		EnabledCategories: []rules.Category{rules.CategoryTaxonomy},
	}))
	res, err = g.ValidateCheckpoint(gateway.StageMap, items("patient"), nil)
	require.NoError(t, err)
	assert.True(t, res.Passed, "structural findings are disabled by category filter")

	res, err = g.ValidateCheckpoint(gateway.StageBuild, items("foo_bar"), nil)
	require.NoError(t, err)
	assert.False(t, res.Passed, "taxonomy findings stay enabled")
}

func TestConfigureRejectsInvalid(t *testing.T) {
	g := newGateway(t)
	assert.Error(t, g.Configure(gateway.Configuration{Strictness: "loose"}))
	assert.Error(t, g.Configure(gateway.Configuration{
		Strictness:        gateway.StrictnessWarn,
		EnabledCategories: []rules.Category{"vibes"},
	}))

	// A rejected configuration leaves the current one in place.
	assert.Equal(t, gateway.DefaultConfiguration(), g.Config())
}

func TestValidateAll(t *testing.T) {
	g := newGateway(t, gateway.WithConfiguration(gateway.Configuration{Strictness: gateway.StrictnessReport}))

	report, err := g.ValidateAll(
		items("person", "patient", "foo_bar"),
		items("person_record_type"))
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.False(t, report.Valid)
	require.Len(t, report.Checkpoints, 3)
	assert.Equal(t, gateway.StageMap, report.Checkpoints[0].Stage)
	assert.Equal(t, gateway.StageBuild, report.Checkpoints[1].Stage)
	assert.Equal(t, gateway.StageExport, report.Checkpoints[2].Stage)

	// patient and foo_bar fail map; foo_bar also fails build.
	assert.Equal(t, 3, report.TotalErrors)
	assert.Equal(t, []string{rules.RuleUnknownHandle, rules.RuleMissingTypeTaxonomy}, report.RulesFired)
}

func TestValidateAllCleanRun(t *testing.T) {
	g := newGateway(t, gateway.WithConfiguration(gateway.Configuration{Strictness: gateway.StrictnessStrict}))

	report, err := g.ValidateAll(
		items("person", "person_record"),
		items("person_record_type", "person_type"))
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Zero(t, report.TotalErrors)
	assert.Empty(t, report.RulesFired)
}

func TestValidateAllStrictStopsAfterFailingStage(t *testing.T) {
	g := newGateway(t, gateway.WithConfiguration(gateway.Configuration{Strictness: gateway.StrictnessStrict}))

	report, err := g.ValidateAll(items("patient"), nil)
	require.Error(t, err)
	assert.False(t, report.Valid)
	require.Len(t, report.Checkpoints, 1, "build and export never ran")
	assert.Equal(t, gateway.StageMap, report.Checkpoints[0].Stage)
}

func TestMetrics(t *testing.T) {
	m := gateway.NewMetrics()
	promReg := prometheus.NewRegistry()
	require.NoError(t, m.Register(promReg))

	g := newGateway(t,
		gateway.WithMetrics(m),
		gateway.WithConfiguration(gateway.Configuration{Strictness: gateway.StrictnessReport}))

	_, err := g.ValidateCheckpoint(gateway.StageMap, items("patient"), nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckpointsTotal.WithLabelValues("map", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues(rules.RuleUnknownHandle)))
}
