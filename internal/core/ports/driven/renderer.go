package driven

import (
	"context"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

// Renderer produces a binary document from a fully-resolved draft.
// The engine hands over the complete record and does not inspect the
// returned bytes.
type Renderer interface {
	// Render produces the output document for a draft.
	Render(ctx context.Context, draft *domain.Draft) ([]byte, error)

	// Format returns the output format identifier (e.g. "txt",
	// "html", "docx"), used to select a renderer and name files.
	Format() string
}
