package driven

import (
	"context"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

// TemplateSync is the narrow contract for remote template storage:
// send a document record, receive a stored-template id. Transport,
// authentication, and retention are the remote collaborator's concern.
type TemplateSync interface {
	// Push stores the draft as a reusable template and returns its id.
	Push(ctx context.Context, draft *domain.Draft) (string, error)
}
