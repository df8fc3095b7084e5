package driving

import "github.com/custodia-labs/drafta-cli/internal/core/domain"

// MergeService expands one template body into many recipient-specific
// documents from tabular input.
type MergeService interface {
	// ParseTable parses raw comma-separated text. The first row is
	// the column header. Returns domain.ErrNothingToGenerate when no
	// data rows follow the header.
	ParseTable(raw string) (domain.RecipientTable, error)

	// ExtractTokens returns the distinct placeholder tokens in a
	// template, in first-seen order.
	ExtractTokens(template string) []string

	// SuggestMapping proposes a token-to-column mapping by
	// case-insensitive substring match, first matching column wins.
	// Best effort only; the caller may override every suggestion.
	SuggestMapping(tokens, columns []string) domain.FieldMapping

	// RenderAll produces exactly one output string per row, in row
	// order. Every occurrence of each mapped token is replaced with
	// that row's column value; unmapped tokens stay verbatim.
	RenderAll(template string, rows []domain.RecipientRow, mapping domain.FieldMapping) []string

	// Merge is the full pipeline: validates the table, renders every
	// row, and wraps each output with a generated document id.
	Merge(template string, table domain.RecipientTable, mapping domain.FieldMapping) ([]domain.MergedDocument, error)
}
