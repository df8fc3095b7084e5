package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

// DraftService is the draft state machine: it owns the authoritative
// in-memory draft, its undo history, and its dirty/saved flags, and
// persists snapshots through the entry store.
//
// Field setters mutate in-memory state only; persistence happens in
// Save, on the autosave interval, or not at all. A failed save never
// corrupts the in-memory draft.
type DraftService interface {
	// Current returns a copy of the draft being edited.
	Current() domain.Draft

	// SetDocumentType updates the document type.
	// Returns domain.ErrInvalidInput for an unrecognised type.
	SetDocumentType(t domain.DocumentType) error

	// SetSignatoryReference switches to a known signatory profile,
	// deactivating any custom signatory.
	SetSignatoryReference(id string)

	// SetCustomSignatory switches to an inline custom signatory,
	// deactivating any reference signatory.
	SetCustomSignatory(s domain.CustomSignatory)

	// SetRecipient replaces the recipient fields.
	SetRecipient(r domain.Recipient)

	// SetSubject replaces the subject line.
	SetSubject(subject string)

	// SetBody replaces the body text and runs the undo-checkpoint
	// check: the previous text is pushed when accumulated insertion
	// since the last checkpoint exceeds the configured threshold.
	SetBody(text string)

	// SetFormatting replaces font size and line spacing.
	// Returns domain.ErrInvalidInput for out-of-bounds values.
	SetFormatting(f domain.Formatting) error

	// Undo restores the most recent undo entry as the body text and
	// returns it. Returns domain.ErrNothingToUndo on an empty stack.
	// Undo is one-directional: there is no redo.
	Undo() (string, error)

	// UndoDepth returns the number of entries on the undo stack.
	UndoDepth() int

	// Save persists the draft snapshot and records the recent-use
	// lists. Idempotent: saving a clean draft writes nothing.
	Save(ctx context.Context) error

	// Load replaces the in-memory draft from the persisted snapshot.
	// Returns domain.ErrNotFound when no snapshot exists and
	// domain.ErrCorruptSnapshot (with defaults applied) when the
	// stored value cannot be decoded.
	Load(ctx context.Context) error

	// Reset restores type defaults, clears the undo history, and
	// removes the persisted snapshot.
	Reset(ctx context.Context) error

	// HasUnsavedWork reports whether the draft is dirty with a
	// non-blank body. Callers use it as the unload-time guard.
	HasUnsavedWork() bool

	// LastSavedAt returns the most recent save time, if any.
	LastSavedAt() (time.Time, bool)

	// WordCount returns the number of words in the body text.
	WordCount() int

	// Export validates the draft and renders it in the given format.
	Export(ctx context.Context, format string) ([]byte, error)

	// PushTemplate sends the draft to remote template storage and
	// returns the stored-template id.
	PushTemplate(ctx context.Context) (string, error)

	// RecentDocumentTypes returns the recent type list, newest first.
	RecentDocumentTypes(ctx context.Context) ([]string, error)

	// SaveRecipient stores the recipient as a reusable profile.
	SaveRecipient(ctx context.Context, r domain.Recipient) (domain.SavedRecipient, error)

	// ListRecipients returns all saved recipient profiles.
	ListRecipients(ctx context.Context) ([]domain.SavedRecipient, error)

	// RemoveRecipient deletes a saved recipient profile by id.
	RemoveRecipient(ctx context.Context, id string) error

	// WordGoal returns the stored word-count goal (0 = unset).
	WordGoal(ctx context.Context) (int, error)

	// SetWordGoal stores the word-count goal.
	SetWordGoal(ctx context.Context, goal int) error
}
