package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
)

// Ensure TemplateSync implements the interface.
var _ driven.TemplateSync = (*TemplateSync)(nil)

// TemplateSync is an in-memory stand-in for the remote template
// collaborator. It honours the push contract (document in, stored id
// out) without any transport.
type TemplateSync struct {
	mu        sync.Mutex
	templates map[string]domain.Draft
}

// NewTemplateSync creates a new in-memory template sync.
func NewTemplateSync() *TemplateSync {
	return &TemplateSync{templates: make(map[string]domain.Draft)}
}

// Push stores the draft as a template and returns its generated id.
func (s *TemplateSync) Push(_ context.Context, draft *domain.Draft) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.templates[id] = *draft
	return id, nil
}

// Get returns a stored template by id. Useful for tests.
func (s *TemplateSync) Get(id string) (domain.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.templates[id]
	return d, ok
}
