package domain

// RecipientRow is one record from a tabular dataset: column name to
// string value. Rows exist only for the duration of a batch merge and
// are never persisted as part of the Draft.
type RecipientRow map[string]string

// RecipientTable is a parsed tabular dataset. The first input row is
// the column header; every following row becomes one RecipientRow.
type RecipientTable struct {
	// Columns is the header row, in input order.
	Columns []string

	// Rows holds one record per data row, in input order.
	Rows []RecipientRow
}

// IsEmpty returns true if the table has no data rows.
func (t RecipientTable) IsEmpty() bool {
	return len(t.Rows) == 0
}

// FieldMapping assigns placeholder tokens to dataset columns.
// Partial mappings are legal: unmapped tokens are left verbatim in
// merge output.
type FieldMapping map[string]string

// Column returns the column mapped to a token, or false if unmapped.
func (m FieldMapping) Column(token string) (string, bool) {
	col, ok := m[token]
	if !ok || col == "" {
		return "", false
	}
	return col, true
}

// MergedDocument is one filled document produced by a batch merge.
type MergedDocument struct {
	// ID is a generated identifier for the output document.
	ID string

	// RowIndex is the zero-based input row this document was
	// rendered from.
	RowIndex int

	// Content is the filled template body.
	Content string
}
