package domain

import "time"

// SnapshotSchemaVersion is the current snapshot record schema.
// Records carrying a different version are treated as corrupt and
// defaulted rather than parsed permissively.
const SnapshotSchemaVersion = 1

// Snapshot is the durable-storage representation of a Draft.
// At most one current-draft snapshot exists; writing a new one fully
// replaces the previous value.
type Snapshot struct {
	// SchemaVersion tags the record layout for forward compatibility.
	SchemaVersion int `json:"schema_version"`

	// Draft is the full draft state at save time.
	Draft Draft `json:"draft"`

	// SavedAt is when the snapshot was written.
	SavedAt time.Time `json:"saved_at"`
}

// SavedRecipient is a recipient profile kept for reuse across drafts.
type SavedRecipient struct {
	// ID is the unique identifier for the profile.
	ID string `json:"id"`

	// Recipient holds the addressee fields.
	Recipient Recipient `json:"recipient"`

	// CreatedAt is when the profile was saved.
	CreatedAt time.Time `json:"created_at"`
}

// Bounds for the recent-use lists.
const (
	// MaxRecentTypes caps the recent document type list.
	MaxRecentTypes = 5

	// MaxRecentSignatories caps the recent signatory id list.
	MaxRecentSignatories = 5
)

// PushRecent prepends value to a most-recent-first list, removing any
// earlier occurrence and trimming the result to max entries.
func PushRecent(list []string, value string, max int) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, value)
	for _, v := range list {
		if v == value {
			continue
		}
		out = append(out, v)
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}
