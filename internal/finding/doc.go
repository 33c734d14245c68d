// Package finding defines the core finding model shared by all validators.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture what
//     the manifest / source-tree / heuristics / resource validators observe.
//   - Offer a light-weight accumulator (Report) that lets validators emit
//     findings without coupling to storage or formatting layers.
//
// # Scope
//
// Package finding does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/reportfmt; orchestration lives
// in internal/driver.
//
// Finding is the central record. It contains:
//
//   - Severity – four-level enum (OK, Info, Warning, Error) defined in
//     severity.go. Only Error affects the run verdict.
//   - Source – the validator that produced the finding; renderers use it to
//     group output into sections.
//   - Message – human oriented text; keep it short and actionable.
//
// Findings are append-only and never deduplicated: the Report preserves the
// exact emission order, which is what makes repeated runs over an unchanged
// project byte-identical after rendering.
package finding
