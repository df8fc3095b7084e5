package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/services"
)

// mockDraftService is a lightweight stand-in for the draft engine.
// It mirrors the engine's observable behaviour closely enough for
// command tests without touching storage.
type mockDraftService struct {
	draft      domain.Draft
	undo       []string
	dirty      bool
	savedAt    time.Time
	hasSaved   bool
	saveCalls  int
	saveErr    error
	loadErr    error
	recipients []domain.SavedRecipient
	goal       int

	exportData   []byte
	exportErr    error
	exportFormat string
}

func newMockDraftService() *mockDraftService {
	return &mockDraftService{draft: domain.DefaultDraft()}
}

func (m *mockDraftService) Current() domain.Draft { return m.draft }

func (m *mockDraftService) SetDocumentType(t domain.DocumentType) error {
	if !t.IsValid() {
		return domain.ErrInvalidInput
	}
	m.draft.DocumentType = t
	m.dirty = true
	return nil
}

func (m *mockDraftService) SetSignatoryReference(id string) {
	m.draft.Signatory = domain.Signatory{ReferenceID: id}
	m.dirty = true
}

func (m *mockDraftService) SetCustomSignatory(s domain.CustomSignatory) {
	m.draft.Signatory = domain.Signatory{Custom: &s}
	m.dirty = true
}

func (m *mockDraftService) SetRecipient(r domain.Recipient) {
	m.draft.Recipient = r
	m.dirty = true
}

func (m *mockDraftService) SetSubject(subject string) {
	m.draft.Subject = subject
	m.dirty = true
}

func (m *mockDraftService) SetBody(text string) {
	m.undo = append(m.undo, m.draft.BodyText)
	m.draft.BodyText = text
	m.dirty = true
}

func (m *mockDraftService) SetFormatting(f domain.Formatting) error {
	if err := f.Validate(); err != nil {
		return err
	}
	m.draft.Formatting = f
	m.dirty = true
	return nil
}

func (m *mockDraftService) Undo() (string, error) {
	if len(m.undo) == 0 {
		return "", domain.ErrNothingToUndo
	}
	restored := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.draft.BodyText = restored
	return restored, nil
}

func (m *mockDraftService) UndoDepth() int { return len(m.undo) }

func (m *mockDraftService) Save(_ context.Context) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.dirty = false
	m.savedAt = time.Now()
	m.hasSaved = true
	return nil
}

func (m *mockDraftService) Load(_ context.Context) error { return m.loadErr }

func (m *mockDraftService) Reset(_ context.Context) error {
	m.draft = domain.DefaultDraft()
	m.undo = nil
	m.dirty = false
	return nil
}

func (m *mockDraftService) HasUnsavedWork() bool {
	return m.dirty && !m.draft.IsBlank()
}

func (m *mockDraftService) LastSavedAt() (time.Time, bool) {
	return m.savedAt, m.hasSaved
}

func (m *mockDraftService) WordCount() int {
	return len(strings.Fields(m.draft.BodyText))
}

func (m *mockDraftService) Export(_ context.Context, format string) ([]byte, error) {
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	m.exportFormat = format
	return m.exportData, nil
}

func (m *mockDraftService) PushTemplate(_ context.Context) (string, error) {
	return "template-1", nil
}

func (m *mockDraftService) RecentDocumentTypes(_ context.Context) ([]string, error) {
	return []string{m.draft.DocumentType.String()}, nil
}

func (m *mockDraftService) SaveRecipient(_ context.Context, r domain.Recipient) (domain.SavedRecipient, error) {
	saved := domain.SavedRecipient{
		ID:        fmt.Sprintf("rcpt-%d", len(m.recipients)+1),
		Recipient: r,
		CreatedAt: time.Now(),
	}
	m.recipients = append(m.recipients, saved)
	return saved, nil
}

func (m *mockDraftService) ListRecipients(_ context.Context) ([]domain.SavedRecipient, error) {
	return m.recipients, nil
}

func (m *mockDraftService) RemoveRecipient(_ context.Context, id string) error {
	for i, r := range m.recipients {
		if r.ID == id {
			m.recipients = append(m.recipients[:i], m.recipients[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockDraftService) WordGoal(_ context.Context) (int, error) { return m.goal, nil }

func (m *mockDraftService) SetWordGoal(_ context.Context, goal int) error {
	m.goal = goal
	return nil
}

// setupTestServices swaps in a fresh mock draft service and real
// merge/analysis services, returning a cleanup that restores the
// previous wiring.
func setupTestServices() func() {
	oldDraft := draftService
	oldMerge := mergeService
	oldAnalysis := analysisService

	draftService = newMockDraftService()
	mergeService = services.NewMergeService()
	analysisService = services.NewAnalysisService()

	return func() {
		draftService = oldDraft
		mergeService = oldMerge
		analysisService = oldAnalysis
	}
}

// currentMockDraft returns the active mock for state assertions.
func currentMockDraft() *mockDraftService {
	return draftService.(*mockDraftService)
}
