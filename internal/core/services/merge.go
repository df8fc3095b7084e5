package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drafta-cli/internal/placeholder"
)

// Ensure MergeService implements the interface.
var _ driving.MergeService = (*MergeService)(nil)

// MergeService expands one template body into many recipient-specific
// documents from flat comma-separated input. Rendering is pure and
// deterministic: the same template, rows, and mapping always produce
// byte-identical output.
type MergeService struct{}

// NewMergeService creates a merge service.
func NewMergeService() *MergeService {
	return &MergeService{}
}

// ParseTable parses raw comma-separated text: newlines separate rows,
// commas separate fields, the first row is the column header. Values
// are trimmed and lose at most one layer of surrounding quotes. Rows
// shorter than the header are padded with empty strings rather than
// failing the whole parse.
func (s *MergeService) ParseTable(raw string) (domain.RecipientTable, error) {
	lines := splitRows(raw)
	if len(lines) == 0 {
		return domain.RecipientTable{}, domain.ErrNothingToGenerate
	}

	columns := splitFields(lines[0])
	if len(lines) < 2 {
		return domain.RecipientTable{Columns: columns}, domain.ErrNothingToGenerate
	}

	rows := make([]domain.RecipientRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitFields(line)
		row := make(domain.RecipientRow, len(columns))
		for i, col := range columns {
			if i < len(values) {
				row[col] = values[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return domain.RecipientTable{Columns: columns, Rows: rows}, nil
}

// splitRows returns the non-blank lines of raw.
func splitRows(raw string) []string {
	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// splitFields splits one row on commas, trimming whitespace and one
// layer of surrounding quotes per value.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = unquote(strings.TrimSpace(p))
	}
	return fields
}

// unquote strips at most one layer of matching surrounding quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '"' || first == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// ExtractTokens returns the distinct placeholder tokens in a template.
func (s *MergeService) ExtractTokens(template string) []string {
	return placeholder.Extract(template)
}

// SuggestMapping proposes a token-to-column mapping. For each token it
// picks the first column whose name contains the token name,
// case-insensitively. Ties between matching columns resolve by column
// order. Tokens with no match stay unmapped.
func (s *MergeService) SuggestMapping(tokens, columns []string) domain.FieldMapping {
	mapping := make(domain.FieldMapping)
	for _, token := range tokens {
		needle := strings.ToLower(strings.TrimSpace(token))
		for _, col := range columns {
			if strings.Contains(strings.ToLower(col), needle) {
				mapping[token] = col
				break
			}
		}
	}
	return mapping
}

// RenderAll produces exactly one output string per row, in row order.
// Tokens are processed in first-seen order; every literal occurrence
// of a mapped token is replaced with that row's column value. Tokens
// that are unmapped, or mapped to a column the row lacks, stay
// verbatim. An empty dataset yields an empty slice, not an error.
func (s *MergeService) RenderAll(template string, rows []domain.RecipientRow, mapping domain.FieldMapping) []string {
	tokens := placeholder.Extract(template)
	out := make([]string, 0, len(rows))

	for _, row := range rows {
		rendered := template
		for _, token := range tokens {
			col, mapped := mapping.Column(token)
			if !mapped {
				continue
			}
			value, ok := row[col]
			if !ok {
				continue
			}
			rendered = strings.ReplaceAll(rendered, "["+token+"]", value)
		}
		out = append(out, rendered)
	}

	return out
}

// Merge validates the table, renders every row, and wraps each output
// with a generated document id.
func (s *MergeService) Merge(template string, table domain.RecipientTable, mapping domain.FieldMapping) ([]domain.MergedDocument, error) {
	if table.IsEmpty() {
		return nil, domain.ErrNothingToGenerate
	}

	contents := s.RenderAll(template, table.Rows, mapping)
	docs := make([]domain.MergedDocument, len(contents))
	for i, c := range contents {
		docs[i] = domain.MergedDocument{
			ID:       uuid.NewString(),
			RowIndex: i,
			Content:  c,
		}
	}
	return docs, nil
}
