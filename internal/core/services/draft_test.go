package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
)

// --- Mock implementations for draft testing ---

// mockEntryStore implements driven.EntryStore for testing.
type mockEntryStore struct {
	mu      sync.RWMutex
	entries map[string]string
	writes  int
	putErr  error
	getErr  error
	delErr  error
}

func newMockEntryStore() *mockEntryStore {
	return &mockEntryStore{entries: make(map[string]string)}
}

func (m *mockEntryStore) GetEntry(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.entries[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *mockEntryStore) PutEntry(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[key] = value
	m.writes++
	return nil
}

func (m *mockEntryStore) DeleteEntry(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.entries, key)
	return nil
}

func (m *mockEntryStore) Close() error { return nil }

func (m *mockEntryStore) writeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// mockRenderer implements driven.Renderer for testing.
type mockRenderer struct {
	format    string
	output    []byte
	renderErr error
	calls     int
}

func (m *mockRenderer) Render(_ context.Context, _ *domain.Draft) ([]byte, error) {
	m.calls++
	if m.renderErr != nil {
		return nil, m.renderErr
	}
	return m.output, nil
}

func (m *mockRenderer) Format() string { return m.format }

func newTestDraftService(store driven.EntryStore) *DraftService {
	return NewDraftService(DefaultDraftConfig(), store)
}

// --- Tests ---

func TestDraftService_SetBody_PushesUndoAboveThreshold(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	// Three edits, each inserting more than the 20-char threshold.
	svc.SetBody(strings.Repeat("a", 21))
	svc.SetBody(strings.Repeat("a", 42))
	svc.SetBody(strings.Repeat("a", 63))

	assert.Equal(t, 3, svc.UndoDepth())

	restored, err := svc.Undo()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 42), restored)
	assert.Equal(t, restored, svc.Current().BodyText)
}

func TestDraftService_SetBody_SmallEditsDoNotCheckpoint(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	// Keystroke-sized edits accumulate without pushing per edit.
	text := ""
	for i := 0; i < 10; i++ {
		text += "ab"
		svc.SetBody(text)
	}

	// 20 chars accumulated: threshold not exceeded yet.
	assert.Equal(t, 0, svc.UndoDepth())

	text += "c"
	svc.SetBody(text)
	assert.Equal(t, 1, svc.UndoDepth())
}

func TestDraftService_Undo_EmptyStack(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	_, err := svc.Undo()
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestDraftService_Undo_OneDirectional(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	svc.SetBody(strings.Repeat("x", 30))
	svc.SetBody(strings.Repeat("y", 60))
	require.Equal(t, 2, svc.UndoDepth())

	// Draining the stack pops exactly min(k, depth) entries.
	_, err := svc.Undo()
	require.NoError(t, err)
	_, err = svc.Undo()
	require.NoError(t, err)
	_, err = svc.Undo()
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestDraftService_Undo_DepthCapEvictsOldest(t *testing.T) {
	store := newMockEntryStore()
	svc := NewDraftService(DraftConfig{UndoThreshold: 2, UndoDepth: 3}, store)

	texts := []string{"aaa", "aaaaaa", "aaaaaaaaa", "aaaaaaaaaaaa", "aaaaaaaaaaaaaaa"}
	for _, txt := range texts {
		svc.SetBody(txt)
	}

	// Capped at 3: the two oldest entries were discarded FIFO.
	assert.Equal(t, 3, svc.UndoDepth())
	restored, err := svc.Undo()
	require.NoError(t, err)
	assert.Equal(t, texts[3], restored)
}

func TestDraftService_Save_Idempotent(t *testing.T) {
	store := newMockEntryStore()
	svc := newTestDraftService(store)
	ctx := context.Background()

	svc.SetBody("Dear Sir, this is the body text of my letter.")

	require.NoError(t, svc.Save(ctx))
	first := store.entries[driven.EntryKeyDraft]
	assert.False(t, svc.HasUnsavedWork())

	// Second save with no intervening edits writes nothing.
	writesAfterFirst := store.writeCount()
	require.NoError(t, svc.Save(ctx))
	assert.Equal(t, writesAfterFirst, store.writeCount())
	assert.Equal(t, first, store.entries[driven.EntryKeyDraft])
}

func TestDraftService_Save_FailureLeavesDraftDirty(t *testing.T) {
	store := newMockEntryStore()
	store.putErr = assert.AnError
	svc := newTestDraftService(store)
	ctx := context.Background()

	svc.SetBody("Body text that should survive a failed save.")

	err := svc.Save(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageFailed)

	// In-memory draft intact, still flagged unsaved.
	assert.Equal(t, "Body text that should survive a failed save.", svc.Current().BodyText)
	assert.True(t, svc.HasUnsavedWork())
}

func TestDraftService_Save_RecordsRecentTypes(t *testing.T) {
	store := newMockEntryStore()
	svc := newTestDraftService(store)
	ctx := context.Background()

	require.NoError(t, svc.SetDocumentType(domain.DocTypeCover))
	svc.SetBody("A cover letter body.")
	require.NoError(t, svc.Save(ctx))

	recents, err := svc.RecentDocumentTypes(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, recents)
	assert.Equal(t, "cover", recents[0])
}

func TestDraftService_Load_NotFound(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftService_Load_RoundTrip(t *testing.T) {
	store := newMockEntryStore()
	svc := newTestDraftService(store)
	ctx := context.Background()

	require.NoError(t, svc.SetDocumentType(domain.DocTypeResignation))
	svc.SetSubject("Notice")
	svc.SetBody("I hereby resign from my position.")
	require.NoError(t, svc.Save(ctx))

	// A fresh service restores the persisted snapshot.
	restored := newTestDraftService(store)
	require.NoError(t, restored.Load(ctx))

	draft := restored.Current()
	assert.Equal(t, domain.DocTypeResignation, draft.DocumentType)
	assert.Equal(t, "Notice", draft.Subject)
	assert.Equal(t, "I hereby resign from my position.", draft.BodyText)
	assert.False(t, restored.HasUnsavedWork())

	savedAt, ok := restored.LastSavedAt()
	assert.True(t, ok)
	assert.False(t, savedAt.IsZero())
}

func TestDraftService_Load_CorruptFallsBackToDefaults(t *testing.T) {
	store := newMockEntryStore()
	store.entries[driven.EntryKeyDraft] = "{not valid json"
	svc := newTestDraftService(store)

	svc.SetBody(strings.Repeat("z", 30))

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)

	// Defaults applied rather than crashing or keeping stale state.
	assert.Equal(t, domain.DefaultDraft(), svc.Current())
	assert.Equal(t, 0, svc.UndoDepth())
}

func TestDraftService_Load_WrongSchemaVersion(t *testing.T) {
	store := newMockEntryStore()
	snap := domain.Snapshot{SchemaVersion: 99, Draft: domain.DefaultDraft()}
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	store.entries[driven.EntryKeyDraft] = string(data)

	svc := newTestDraftService(store)
	assert.ErrorIs(t, svc.Load(context.Background()), domain.ErrCorruptSnapshot)
}

func TestDraftService_Reset(t *testing.T) {
	store := newMockEntryStore()
	svc := newTestDraftService(store)
	ctx := context.Background()

	svc.SetBody(strings.Repeat("w", 40))
	require.NoError(t, svc.Save(ctx))
	require.Contains(t, store.entries, driven.EntryKeyDraft)

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, domain.DefaultDraft(), svc.Current())
	assert.Equal(t, 0, svc.UndoDepth())
	assert.NotContains(t, store.entries, driven.EntryKeyDraft)

	_, err := svc.Undo()
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestDraftService_HasUnsavedWork_BlankBody(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	// Dirty but blank: nothing worth guarding.
	require.NoError(t, svc.SetDocumentType(domain.DocTypeCover))
	assert.False(t, svc.HasUnsavedWork())

	svc.SetBody("Something worth keeping.")
	assert.True(t, svc.HasUnsavedWork())
}

func TestDraftService_Export_ValidationBlocks(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	renderer := &mockRenderer{format: "txt", output: []byte("out")}
	svc.RegisterRenderer(renderer)

	_, err := svc.Export(context.Background(), "txt")
	assert.ErrorIs(t, err, domain.ErrEmptyBody)
	assert.Equal(t, 0, renderer.calls)
}

func TestDraftService_Export_UnknownFormat(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	svc.SetBody("Some body text.")

	_, err := svc.Export(context.Background(), "pdf")
	assert.ErrorIs(t, err, domain.ErrRendererUnavailable)
}

func TestDraftService_Export_Success(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	svc.RegisterRenderer(&mockRenderer{format: "txt", output: []byte("rendered")})
	svc.SetBody("Some body text.")

	out, err := svc.Export(context.Background(), "txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered"), out)
}

func TestDraftService_PushTemplate_Unconfigured(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	svc.SetBody("Some body text.")

	_, err := svc.PushTemplate(context.Background())
	assert.ErrorIs(t, err, domain.ErrTemplateSyncUnavailable)
}

func TestDraftService_Recipients_CRUD(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	ctx := context.Background()

	saved, err := svc.SaveRecipient(ctx, domain.Recipient{Name: "John Smith", Address: "1 Main St"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	list, err := svc.ListRecipients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "John Smith", list[0].Recipient.Name)

	require.NoError(t, svc.RemoveRecipient(ctx, saved.ID))
	list, err = svc.ListRecipients(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.RemoveRecipient(ctx, saved.ID), domain.ErrNotFound)
}

func TestDraftService_SaveRecipient_RequiresName(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	_, err := svc.SaveRecipient(context.Background(), domain.Recipient{Address: "1 Main St"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDraftService_WordGoal(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	ctx := context.Background()

	goal, err := svc.WordGoal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, goal)

	require.NoError(t, svc.SetWordGoal(ctx, 250))
	goal, err = svc.WordGoal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, goal)

	assert.ErrorIs(t, svc.SetWordGoal(ctx, -1), domain.ErrInvalidInput)
}

func TestDraftService_WordCount(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	assert.Equal(t, 0, svc.WordCount())

	svc.SetBody("one two three")
	assert.Equal(t, 3, svc.WordCount())
}

func TestDraftService_SetFormatting_Bounds(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())

	require.NoError(t, svc.SetFormatting(domain.Formatting{FontSize: 12, LineSpacing: 2.0}))
	assert.Equal(t, 12, svc.Current().Formatting.FontSize)

	err := svc.SetFormatting(domain.Formatting{FontSize: 20, LineSpacing: 2.0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
