// Package diag defines the diagnostic model shared by the checker, the
// renderers and the service.
//
// # Purpose
//
//   - Provide deterministic, serialisable records of the findings produced by
//     the declaration validator (and by file loading).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not format for terminals or encode JSON. Rendering lives
// in internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form (SYN2015,
//     SEM3002). Syntax codes live in 2000–2999, semantic codes in 3000–3999.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – character span of the offending lexeme.
//   - Notes – secondary spans, e.g. where a duplicate name was first declared.
//   - Fixes – structured text edits, e.g. inserting a missing `;`.
//
// # Emitting diagnostics
//
// Producers build a ReportBuilder via ReportError, chain WithNote / WithFix,
// and call Emit. BagReporter collects into a Bag, which supports limits,
// sorting and deduplication.
package diag
