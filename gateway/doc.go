// Package gateway orchestrates checkpoint validation across the modeling
// pipeline. Each checkpoint classifies a batch of module and taxonomy
// handles against the canonical vocabulary, aggregates structured errors
// and warnings, and applies the configured strictness policy.
//
// The stage sequence is fixed: ingest → extract → map → build → export.
// Only map, build and export perform substantive checks today; ingest and
// extract are counting pass-throughs reserved for future rule categories,
// and export is a deliberate extension point where platform-specific
// collaborators attach their own rules.
//
// Strictness is applied per checkpoint, after the stage's checks complete:
//
//   - strict: an error-bearing stage returns a *StrictnessError carrying
//     the first error for context. Validation never stops mid-stage.
//   - warn: errors and warnings are logged and the call returns normally.
//   - report: results are only ever returned, never raised or logged.
//
// The gateway's configuration is the only mutable state in the system. It
// is replaced wholesale via Configure, which performs an atomic pointer
// swap: a validation call racing a reconfiguration observes either the old
// or the new configuration, never a torn value.
package gateway
