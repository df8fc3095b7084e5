// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// All draft and undo-stack mutation is serialised behind a single
// mutex per service, preserving the run-to-completion semantics the
// engine assumes.
package services
