// Package domain defines the core business entities for Drafta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Draft: The in-memory editable document state
//   - Snapshot: The versioned durable-storage form of a Draft
//   - RecipientTable: Tabular input for batch merge
//   - FieldMapping: Placeholder-to-column assignments for batch merge
//   - AnalysisResult: Spelling, tone, and readability findings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
