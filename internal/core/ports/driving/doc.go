// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter calls these interfaces, and core services implement
// them.
//
//   - DraftService: The draft state machine (edit, undo, persist)
//   - MergeService: Batch template merge from tabular data
//   - AnalysisService: Spelling, tone, and readability analysis
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
