package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNothingToUndo indicates the undo history is empty.
	// Callers treat this as an informational condition, not a failure.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToGenerate indicates a batch merge was requested
	// against a dataset with no data rows.
	ErrNothingToGenerate = errors.New("nothing to generate")

	// ErrCorruptSnapshot indicates a persisted snapshot could not be
	// decoded. The engine falls back to defaults rather than failing.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrStorageFailed indicates the durable entry store rejected a
	// read or write. The in-memory draft is never affected.
	ErrStorageFailed = errors.New("storage failed")

	// Validation Errors.

	// ErrEmptyBody indicates an export or render was requested on a
	// draft with a blank body.
	ErrEmptyBody = errors.New("document body is empty")

	// ErrSignatoryUnnamed indicates a custom signatory is active but
	// has no name.
	ErrSignatoryUnnamed = errors.New("custom signatory requires a name")

	// ErrRendererUnavailable indicates no renderer is configured for
	// the requested output format.
	ErrRendererUnavailable = errors.New("renderer unavailable")

	// ErrTemplateSyncUnavailable indicates no remote template
	// collaborator is configured. Template sharing is disabled.
	ErrTemplateSyncUnavailable = errors.New("template sync unavailable")
)
