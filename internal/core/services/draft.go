package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drafta-cli/internal/logger"
)

// Ensure DraftService implements the interface.
var _ driving.DraftService = (*DraftService)(nil)

// DraftConfig holds the tunable constants of the draft state machine.
// The undo threshold and depth are implementation choices, not
// load-bearing behaviour; tests that fix them do so explicitly.
type DraftConfig struct {
	// UndoThreshold is the accumulated insertion (in characters)
	// since the last checkpoint that triggers an undo entry.
	UndoThreshold int

	// UndoDepth caps the undo history. Oldest entries are discarded
	// first once the cap is reached.
	UndoDepth int
}

// DefaultDraftConfig returns the standard tuning.
func DefaultDraftConfig() DraftConfig {
	return DraftConfig{
		UndoThreshold: 20,
		UndoDepth:     50,
	}
}

// DraftService is the draft state machine. It owns the authoritative
// in-memory draft, a bounded one-directional undo history, and the
// dirty/saved flags, and persists snapshots through the entry store.
type DraftService struct {
	cfg      DraftConfig
	entries  driven.EntryStore
	sync     driven.TemplateSync
	renderer map[string]driven.Renderer

	mu            sync.Mutex
	draft         domain.Draft
	undo          []string
	checkpointLen int
	dirty         bool
	savedAt       time.Time
	hasSaved      bool
}

// NewDraftService creates a draft service with type defaults applied.
func NewDraftService(cfg DraftConfig, entries driven.EntryStore) *DraftService {
	return &DraftService{
		cfg:      cfg,
		entries:  entries,
		renderer: make(map[string]driven.Renderer),
		draft:    domain.DefaultDraft(),
	}
}

// RegisterRenderer makes a renderer available for Export.
func (s *DraftService) RegisterRenderer(r driven.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer[r.Format()] = r
}

// SetTemplateSync configures the remote template collaborator.
// Without it, PushTemplate is disabled.
func (s *DraftService) SetTemplateSync(ts driven.TemplateSync) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync = ts
}

// Current returns a copy of the draft being edited.
func (s *DraftService) Current() domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDocumentType updates the document type.
func (s *DraftService) SetDocumentType(t domain.DocumentType) error {
	if !t.IsValid() {
		return fmt.Errorf("document type %q: %w", t, domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.DocumentType = t
	s.dirty = true
	return nil
}

// SetSignatoryReference switches to a known signatory profile.
func (s *DraftService) SetSignatoryReference(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Signatory = domain.Signatory{ReferenceID: id}
	s.dirty = true
}

// SetCustomSignatory switches to an inline custom signatory.
func (s *DraftService) SetCustomSignatory(sig domain.CustomSignatory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Signatory = domain.Signatory{Custom: &sig}
	s.dirty = true
}

// SetRecipient replaces the recipient fields.
func (s *DraftService) SetRecipient(r domain.Recipient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Recipient = r
	s.dirty = true
}

// SetSubject replaces the subject line.
func (s *DraftService) SetSubject(subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Subject = subject
	s.dirty = true
}

// SetBody replaces the body text. The previous text becomes an undo
// entry when accumulated insertion since the last checkpoint exceeds
// the configured threshold; smaller edits only move the dirty flag,
// so the history never grows one entry per keystroke.
func (s *DraftService) SetBody(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.draft.BodyText
	if len(text)-s.checkpointLen > s.cfg.UndoThreshold {
		s.pushUndo(prev)
		s.checkpointLen = len(text)
	}
	s.draft.BodyText = text
	s.dirty = true
}

// pushUndo appends an entry, evicting the oldest past the depth cap.
// Caller must hold the lock.
func (s *DraftService) pushUndo(text string) {
	if len(s.undo) >= s.cfg.UndoDepth {
		s.undo = s.undo[1:]
	}
	s.undo = append(s.undo, text)
}

// SetFormatting replaces font size and line spacing.
func (s *DraftService) SetFormatting(f domain.Formatting) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("formatting: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Formatting = f
	s.dirty = true
	return nil
}

// Undo pops the most recent entry and restores it as the body text.
func (s *DraftService) Undo() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return "", domain.ErrNothingToUndo
	}

	last := len(s.undo) - 1
	restored := s.undo[last]
	s.undo = s.undo[:last]
	s.draft.BodyText = restored
	s.checkpointLen = len(restored)
	s.dirty = true
	return restored, nil
}

// UndoDepth returns the number of entries on the undo stack.
func (s *DraftService) UndoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo)
}

// Save persists the draft snapshot. Saving a clean draft writes
// nothing, so back-to-back saves produce the same stored value. A
// failed write leaves the draft and its dirty flag untouched.
func (s *DraftService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	now := time.Now()
	snap := domain.Snapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		Draft:         s.draft,
		SavedAt:       now,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := s.entries.PutEntry(ctx, driven.EntryKeyDraft, string(data)); err != nil {
		return fmt.Errorf("save draft: %w: %v", domain.ErrStorageFailed, err)
	}

	s.dirty = false
	s.savedAt = now
	s.hasSaved = true
	s.recordRecents(ctx)
	return nil
}

// recordRecents updates the recent-use lists. Best effort: a failure
// here must not fail the save. Caller must hold the lock.
func (s *DraftService) recordRecents(ctx context.Context) {
	if err := s.pushRecentEntry(ctx, driven.EntryKeyRecentTypes,
		s.draft.DocumentType.String(), domain.MaxRecentTypes); err != nil {
		logger.Warn("record recent document type: %v", err)
	}
	if id := s.draft.Signatory.ReferenceID; id != "" {
		if err := s.pushRecentEntry(ctx, driven.EntryKeyRecentSignatories,
			id, domain.MaxRecentSignatories); err != nil {
			logger.Warn("record recent signatory: %v", err)
		}
	}
}

// pushRecentEntry reads a JSON string list, prepends value, writes it
// back. Caller must hold the lock.
func (s *DraftService) pushRecentEntry(ctx context.Context, key, value string, max int) error {
	list, err := s.loadStringList(ctx, key)
	if err != nil {
		return err
	}
	list = domain.PushRecent(list, value, max)
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.entries.PutEntry(ctx, key, string(data))
}

// loadStringList reads a JSON string list entry. A missing or
// malformed entry yields an empty list.
func (s *DraftService) loadStringList(ctx context.Context, key string) ([]string, error) {
	raw, err := s.entries.GetEntry(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, nil
	}
	return list, nil
}

// Load replaces the in-memory draft from the persisted snapshot.
func (s *DraftService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.entries.GetEntry(ctx, driven.EntryKeyDraft)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load draft: %w: %v", domain.ErrStorageFailed, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.applyDefaultsLocked()
		return fmt.Errorf("decode snapshot: %w", domain.ErrCorruptSnapshot)
	}
	if snap.SchemaVersion != domain.SnapshotSchemaVersion {
		s.applyDefaultsLocked()
		return fmt.Errorf("schema version %d: %w", snap.SchemaVersion, domain.ErrCorruptSnapshot)
	}

	s.draft = snap.Draft
	s.undo = nil
	s.checkpointLen = len(s.draft.BodyText)
	s.dirty = false
	s.savedAt = snap.SavedAt
	s.hasSaved = true
	return nil
}

// applyDefaultsLocked resets in-memory state to type defaults.
// Caller must hold the lock.
func (s *DraftService) applyDefaultsLocked() {
	s.draft = domain.DefaultDraft()
	s.undo = nil
	s.checkpointLen = 0
	s.dirty = false
	s.savedAt = time.Time{}
	s.hasSaved = false
}

// Reset restores type defaults, clears the undo history, and removes
// the persisted snapshot.
func (s *DraftService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyDefaultsLocked()
	if err := s.entries.DeleteEntry(ctx, driven.EntryKeyDraft); err != nil {
		return fmt.Errorf("reset draft: %w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}

// HasUnsavedWork reports whether the draft is dirty with a non-blank
// body. The caller warns the user before teardown when this is true.
func (s *DraftService) HasUnsavedWork() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty && !s.draft.IsBlank()
}

// LastSavedAt returns the most recent save time, if any.
func (s *DraftService) LastSavedAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedAt, s.hasSaved
}

// WordCount returns the number of words in the body text.
func (s *DraftService) WordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(strings.Fields(s.draft.BodyText))
}

// Export validates the draft and renders it in the given format.
func (s *DraftService) Export(ctx context.Context, format string) ([]byte, error) {
	s.mu.Lock()
	draft := s.draft
	r, ok := s.renderer[format]
	s.mu.Unlock()

	if err := draft.ExportReady(); err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("format %q: %w", format, domain.ErrRendererUnavailable)
	}

	out, err := r.Render(ctx, &draft)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return out, nil
}

// PushTemplate sends the draft to remote template storage.
func (s *DraftService) PushTemplate(ctx context.Context) (string, error) {
	s.mu.Lock()
	draft := s.draft
	ts := s.sync
	s.mu.Unlock()

	if ts == nil {
		return "", domain.ErrTemplateSyncUnavailable
	}
	if err := draft.ExportReady(); err != nil {
		return "", err
	}
	id, err := ts.Push(ctx, &draft)
	if err != nil {
		return "", fmt.Errorf("push template: %w", err)
	}
	return id, nil
}

// RecentDocumentTypes returns the recent type list, newest first.
func (s *DraftService) RecentDocumentTypes(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadStringList(ctx, driven.EntryKeyRecentTypes)
}

// SaveRecipient stores the recipient as a reusable profile.
func (s *DraftService) SaveRecipient(ctx context.Context, r domain.Recipient) (domain.SavedRecipient, error) {
	if strings.TrimSpace(r.Name) == "" {
		return domain.SavedRecipient{}, fmt.Errorf("recipient name: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.loadRecipients(ctx)
	if err != nil {
		return domain.SavedRecipient{}, err
	}

	profile := domain.SavedRecipient{
		ID:        uuid.NewString(),
		Recipient: r,
		CreatedAt: time.Now(),
	}
	saved = append(saved, profile)
	if err := s.storeRecipients(ctx, saved); err != nil {
		return domain.SavedRecipient{}, err
	}
	return profile, nil
}

// ListRecipients returns all saved recipient profiles.
func (s *DraftService) ListRecipients(ctx context.Context) ([]domain.SavedRecipient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRecipients(ctx)
}

// RemoveRecipient deletes a saved recipient profile by id.
func (s *DraftService) RemoveRecipient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.loadRecipients(ctx)
	if err != nil {
		return err
	}

	kept := saved[:0]
	found := false
	for _, p := range saved {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	return s.storeRecipients(ctx, kept)
}

// loadRecipients reads the saved recipient list. Missing or malformed
// entries yield an empty list. Caller must hold the lock.
func (s *DraftService) loadRecipients(ctx context.Context) ([]domain.SavedRecipient, error) {
	raw, err := s.entries.GetEntry(ctx, driven.EntryKeyRecipients)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load recipients: %w: %v", domain.ErrStorageFailed, err)
	}
	var list []domain.SavedRecipient
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, nil
	}
	return list, nil
}

// storeRecipients writes the saved recipient list. Caller must hold
// the lock.
func (s *DraftService) storeRecipients(ctx context.Context, list []domain.SavedRecipient) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode recipients: %w", err)
	}
	if err := s.entries.PutEntry(ctx, driven.EntryKeyRecipients, string(data)); err != nil {
		return fmt.Errorf("store recipients: %w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}

// WordGoal returns the stored word-count goal (0 = unset).
func (s *DraftService) WordGoal(ctx context.Context) (int, error) {
	raw, err := s.entries.GetEntry(ctx, driven.EntryKeyWordGoal)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load word goal: %w: %v", domain.ErrStorageFailed, err)
	}
	var goal int
	if err := json.Unmarshal([]byte(raw), &goal); err != nil {
		return 0, nil
	}
	return goal, nil
}

// SetWordGoal stores the word-count goal.
func (s *DraftService) SetWordGoal(ctx context.Context, goal int) error {
	if goal < 0 {
		return fmt.Errorf("word goal: %w", domain.ErrInvalidInput)
	}
	data, err := json.Marshal(goal)
	if err != nil {
		return fmt.Errorf("encode word goal: %w", err)
	}
	if err := s.entries.PutEntry(ctx, driven.EntryKeyWordGoal, string(data)); err != nil {
		return fmt.Errorf("store word goal: %w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}
