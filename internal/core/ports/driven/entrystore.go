package driven

import "context"

// EntryStore is durable key-value persistence for small named string
// entries: the current draft snapshot, recent-use lists, saved
// recipients, and the word-count goal. Values are serialized
// structured text (JSON).
//
// Implementations must distinguish a missing entry (domain.ErrNotFound)
// from an empty value, and must surface I/O failures rather than
// blocking or retrying: the engine degrades to an unsaved state.
type EntryStore interface {
	// GetEntry retrieves the value stored under key.
	// Returns domain.ErrNotFound if the key has never been written.
	GetEntry(ctx context.Context, key string) (string, error)

	// PutEntry stores value under key, fully replacing any previous
	// value for that key.
	PutEntry(ctx context.Context, key, value string) error

	// DeleteEntry removes the entry under key.
	// Deleting a missing key is not an error.
	DeleteEntry(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// Well-known entry keys.
const (
	// EntryKeyDraft holds the current draft snapshot.
	EntryKeyDraft = "draft.current"

	// EntryKeyRecentTypes holds the recent document type list.
	EntryKeyRecentTypes = "recent.document_types"

	// EntryKeyRecentSignatories holds the recent signatory id list.
	EntryKeyRecentSignatories = "recent.signatories"

	// EntryKeyRecipients holds the saved recipient list.
	EntryKeyRecipients = "recipients.saved"

	// EntryKeyWordGoal holds the word-count goal.
	EntryKeyWordGoal = "goal.word_count"
)
