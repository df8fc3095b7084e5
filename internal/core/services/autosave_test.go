package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
)

func startAutosaver(t *testing.T, a *Autosaver) {
	t.Helper()
	go func() { _ = a.Start(context.Background()) }()
	t.Cleanup(a.Stop)
}

func TestAutosaver_SavesDirtyDraft(t *testing.T) {
	store := newMockEntryStore()
	svc := newTestDraftService(store)
	svc.SetBody("Unsaved body text worth keeping around.")

	a := NewAutosaver(svc, 20*time.Millisecond)
	startAutosaver(t, a)

	require.Eventually(t, func() bool {
		return !svc.HasUnsavedWork()
	}, time.Second, 10*time.Millisecond)

	store.mu.RLock()
	_, saved := store.entries[driven.EntryKeyDraft]
	store.mu.RUnlock()
	assert.True(t, saved)
}

func TestAutosaver_SkipsCleanDraft(t *testing.T) {
	store := newMockEntryStore()
	svc := newTestDraftService(store)

	a := NewAutosaver(svc, 10*time.Millisecond)
	startAutosaver(t, a)

	// Nothing dirty: the timer must not produce any storage writes.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, store.writeCount())
}

func TestAutosaver_SkipsBlankBody(t *testing.T) {
	store := newMockEntryStore()
	svc := newTestDraftService(store)

	// Dirty, but the body is blank: a still-empty draft is never
	// persisted.
	require.NoError(t, svc.SetDocumentType("cover"))

	a := NewAutosaver(svc, 10*time.Millisecond)
	startAutosaver(t, a)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, store.writeCount())
}

func TestAutosaver_StopIsIdempotent(t *testing.T) {
	svc := newTestDraftService(newMockEntryStore())
	a := NewAutosaver(svc, 10*time.Millisecond)

	go func() { _ = a.Start(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	a.Stop()
	a.Stop() // Second stop must not panic or block.
}

func TestAutosaver_DefaultInterval(t *testing.T) {
	a := NewAutosaver(newTestDraftService(newMockEntryStore()), 0)
	assert.Equal(t, DefaultAutosaveInterval, a.interval)
}
