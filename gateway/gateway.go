package gateway

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/c360studio/semvocab/rules"
	"github.com/c360studio/semvocab/vocabulary"
)

// deepNestingThreshold is the advisory separator count above which a
// taxonomy handle draws a warning. It is never a hard limit.
const deepNestingThreshold = 6

// Gateway validates checkpoint batches against an immutable vocabulary
// registry and rule catalog. All methods are safe for concurrent use; the
// configuration is swapped atomically.
type Gateway struct {
	reg     *vocabulary.Registry
	catalog *rules.Catalog
	cfg     atomic.Pointer[Configuration]
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger used in warn mode. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) { g.logger = logger }
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

// WithConfiguration sets the initial configuration. The configuration is
// assumed valid; use Configure for caller-supplied values.
func WithConfiguration(cfg Configuration) Option {
	return func(g *Gateway) { g.cfg.Store(&cfg) }
}

// New creates a Gateway over reg and catalog with the default
// configuration.
func New(reg *vocabulary.Registry, catalog *rules.Catalog, opts ...Option) *Gateway {
	g := &Gateway{reg: reg, catalog: catalog}
	def := DefaultConfiguration()
	g.cfg.Store(&def)
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Configure validates cfg and replaces the current configuration in one
// atomic swap. In-flight validation calls observe either the old or the
// new configuration, never a mixture.
func (g *Gateway) Configure(cfg Configuration) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid gateway configuration: %w", err)
	}
	g.cfg.Store(&cfg)
	return nil
}

// Config returns the configuration current at call time.
func (g *Gateway) Config() Configuration {
	return *g.cfg.Load()
}

// ValidateCheckpoint runs the checks for stage over the supplied modules
// and taxonomies. The returned result is always complete for the stage;
// under strict strictness an error-bearing stage additionally returns a
// *StrictnessError after its checks finish.
func (g *Gateway) ValidateCheckpoint(stage Stage, modules, taxonomies []Item) (CheckpointResult, error) {
	if !stage.Valid() {
		return CheckpointResult{}, fmt.Errorf("unknown checkpoint stage %q", stage)
	}

	cfg := g.Config()
	result := CheckpointResult{
		Stage: stage,
		Stats: CheckpointStats{
			ModulesChecked:    len(modules),
			TaxonomiesChecked: len(taxonomies),
		},
	}

	switch stage {
	case StageMap:
		g.checkMap(cfg, &result, modules, taxonomies)
	case StageBuild:
		g.checkBuild(cfg, &result, modules, taxonomies)
	case StageIngest, StageExtract, StageExport:
		// Counting pass-throughs. Export is the extension point where
		// platform collaborators attach their own rules externally.
	}

	result.Passed = len(result.Errors) == 0
	g.metrics.observeCheckpoint(result)

	switch cfg.Strictness {
	case StrictnessStrict:
		if len(result.Errors) > 0 {
			return result, &StrictnessError{
				Stage:      stage,
				ErrorCount: len(result.Errors),
				First:      result.Errors[0],
			}
		}
	case StrictnessWarn:
		for _, e := range result.Errors {
			g.logger.Warn("checkpoint error",
				"stage", string(stage), "rule", e.RuleID, "handle", e.Handle, "message", e.Message)
		}
		for _, w := range result.Warnings {
			g.logger.Info("checkpoint warning",
				"stage", string(stage), "rule", w.RuleID, "handle", w.Handle, "message", w.Message)
		}
	case StrictnessReport:
		// Structured results only.
	}

	return result, nil
}

// ValidateAll runs the substantive stages in fixed order and aggregates
// their results. Under strict strictness the run stops after the first
// error-bearing stage, returning the partial report and the stage's
// *StrictnessError.
func (g *Gateway) ValidateAll(modules, taxonomies []Item) (Report, error) {
	report := Report{ID: uuid.New().String()}

	for _, stage := range substantiveStages {
		result, err := g.ValidateCheckpoint(stage, modules, taxonomies)
		report.Checkpoints = append(report.Checkpoints, result)
		report.TotalErrors += len(result.Errors)
		report.TotalWarnings += len(result.Warnings)
		report.RulesFired = mergeRuleIDs(report.RulesFired, result)
		if err != nil {
			report.Valid = false
			return report, err
		}
	}

	report.Valid = report.TotalErrors == 0
	return report, nil
}

// checkMap classifies every supplied handle; anything outside the
// generative hierarchy yields a structural error with a suggestion.
func (g *Gateway) checkMap(cfg Configuration, result *CheckpointResult, modules, taxonomies []Item) {
	for _, item := range append(append([]Item{}, modules...), taxonomies...) {
		c := g.reg.ValidateHandle(item.Handle)
		if c.Valid {
			continue
		}
		g.addError(cfg, result, ValidationError{
			RuleID:     rules.RuleUnknownHandle,
			Message:    c.Error,
			Handle:     item.Handle,
			Suggestion: c.Suggestion,
		})
	}
}

// checkBuild enforces structural obligations across the checked item set:
// every compound-looking handle needs its sibling type taxonomy in the
// same set, and taxonomy-looking handles draw an advisory warning when
// they nest too deep.
func (g *Gateway) checkBuild(cfg Configuration, result *CheckpointResult, modules, taxonomies []Item) {
	handles := make([]string, 0, len(modules)+len(taxonomies))
	present := make(map[string]bool, len(modules)+len(taxonomies))
	for _, item := range append(append([]Item{}, modules...), taxonomies...) {
		if !present[item.Handle] {
			present[item.Handle] = true
			handles = append(handles, item.Handle)
		}
	}

	for _, h := range handles {
		if looksLikeCompound(h) {
			if !present[h+vocabulary.TypeSuffix] {
				g.addError(cfg, result, ValidationError{
					RuleID:  rules.RuleMissingTypeTaxonomy,
					Message: fmt.Sprintf("compound %s has no type taxonomy in the checked set", h),
					Handle:  h,
				})
			}
		}
		if looksLikeTaxonomy(h) {
			if depth := strings.Count(h, vocabulary.Separator); depth > deepNestingThreshold {
				g.addWarning(cfg, result, ValidationError{
					RuleID:  rules.RuleDeepNesting,
					Message: fmt.Sprintf("handle %s nests %d levels deep", h, depth),
					Handle:  h,
				})
			}
		}
	}
}

func looksLikeCompound(handle string) bool {
	return strings.Contains(handle, vocabulary.Separator) &&
		!strings.HasSuffix(handle, vocabulary.TypeSuffix)
}

func looksLikeTaxonomy(handle string) bool {
	return strings.HasSuffix(handle, vocabulary.TypeSuffix) ||
		strings.Contains(handle, vocabulary.TypeSuffix+vocabulary.Separator)
}

func (g *Gateway) addError(cfg Configuration, result *CheckpointResult, e ValidationError) {
	if !g.keep(cfg, e.RuleID) {
		return
	}
	result.Errors = append(result.Errors, e)
	g.metrics.observeError(e)
}

func (g *Gateway) addWarning(cfg Configuration, result *CheckpointResult, w ValidationError) {
	if !g.keep(cfg, w.RuleID) {
		return
	}
	result.Warnings = append(result.Warnings, w)
	g.metrics.observeWarning(w)
}

// keep applies the configured category and skip filters to a finding.
func (g *Gateway) keep(cfg Configuration, ruleID string) bool {
	if cfg.ruleSkipped(ruleID) {
		return false
	}
	if len(cfg.EnabledCategories) == 0 {
		return true
	}
	r, err := g.catalog.Definition(ruleID)
	if err != nil {
		// The gateway only emits catalog ids; an unknown id here is a
		// programming mistake, so surface the finding rather than hide it.
		return true
	}
	return cfg.categoryEnabled(r.Category)
}

func mergeRuleIDs(fired []string, result CheckpointResult) []string {
	seen := make(map[string]bool, len(fired))
	for _, id := range fired {
		seen[id] = true
	}
	for _, e := range result.Errors {
		if !seen[e.RuleID] {
			seen[e.RuleID] = true
			fired = append(fired, e.RuleID)
		}
	}
	for _, w := range result.Warnings {
		if !seen[w.RuleID] {
			seen[w.RuleID] = true
			fired = append(fired, w.RuleID)
		}
	}
	return fired
}
