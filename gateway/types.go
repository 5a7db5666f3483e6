package gateway

import "fmt"

// Stage names a pipeline checkpoint.
type Stage string

const (
	// StageIngest counts incoming items; no checks yet.
	StageIngest Stage = "ingest"

	// StageExtract counts extracted items; no checks yet.
	StageExtract Stage = "extract"

	// StageMap classifies every handle against the canonical vocabulary.
	StageMap Stage = "map"

	// StageBuild checks structural obligations across the item set.
	StageBuild Stage = "build"

	// StageExport is an extension point; the core performs no checks here.
	StageExport Stage = "export"
)

// Stages lists the fixed pipeline sequence.
var Stages = []Stage{StageIngest, StageExtract, StageMap, StageBuild, StageExport}

// substantiveStages are the stages ValidateAll runs, in order.
var substantiveStages = []Stage{StageMap, StageBuild, StageExport}

// Valid reports whether s names a known stage.
func (s Stage) Valid() bool {
	switch s {
	case StageIngest, StageExtract, StageMap, StageBuild, StageExport:
		return true
	}
	return false
}

// Item is the minimal shape a checkpoint consumes. Callers may carry any
// richer type; only the handle participates in validation.
type Item struct {
	Handle string `json:"handle"`
	Name   string `json:"name,omitempty"`
}

// ValidationError is a structured finding. It is always returned as a
// value, never raised; warnings share the shape but are excluded from
// pass/fail determination.
type ValidationError struct {
	RuleID     string `json:"rule_id"`
	Message    string `json:"message"`
	Handle     string `json:"handle,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CheckpointStats counts what a checkpoint looked at.
type CheckpointStats struct {
	ModulesChecked    int `json:"modules_checked"`
	TaxonomiesChecked int `json:"taxonomies_checked"`
}

// CheckpointResult is the outcome of one checkpoint call.
type CheckpointResult struct {
	Stage    Stage             `json:"stage"`
	Passed   bool              `json:"passed"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"`
	Stats    CheckpointStats   `json:"stats"`
}

// Report aggregates a full ValidateAll run.
type Report struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Valid is true when no stage produced an error.
	Valid bool `json:"valid"`

	// Checkpoints holds per-stage results in execution order.
	Checkpoints []CheckpointResult `json:"checkpoints"`

	// TotalErrors and TotalWarnings sum across stages.
	TotalErrors   int `json:"total_errors"`
	TotalWarnings int `json:"total_warnings"`

	// RulesFired is the de-duplicated set of rule ids that produced
	// findings, in first-fired order.
	RulesFired []string `json:"rules_fired,omitempty"`
}

// StrictnessError is the terminal failure strict mode returns after an
// error-bearing stage completes. It carries the first error for context;
// the full result is still returned alongside it.
type StrictnessError struct {
	Stage      Stage
	ErrorCount int
	First      ValidationError
}

// Error implements the error interface.
func (e *StrictnessError) Error() string {
	return fmt.Sprintf("%s checkpoint failed with %d error(s); first: [%s] %s",
		e.Stage, e.ErrorCount, e.First.RuleID, e.First.Message)
}
