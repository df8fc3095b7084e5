// Package text renders a draft as a plain-text letter.
package text

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer produces a conventional plain-text letter layout: date,
// recipient block, subject, body, and signatory block.
type Renderer struct {
	now func() time.Time
}

// NewRenderer creates a plain-text renderer.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// Format returns the output format identifier.
func (r *Renderer) Format() string {
	return "txt"
}

// Render produces the letter as UTF-8 text.
func (r *Renderer) Render(_ context.Context, draft *domain.Draft) ([]byte, error) {
	var b strings.Builder

	b.WriteString(r.now().Format("2 January 2006"))
	b.WriteString("\n\n")

	if block := recipientBlock(draft.Recipient); block != "" {
		b.WriteString(block)
		b.WriteString("\n")
	}

	if draft.Subject != "" {
		b.WriteString("Re: ")
		b.WriteString(draft.Subject)
		b.WriteString("\n\n")
	}

	b.WriteString(strings.TrimRight(draft.BodyText, "\n"))
	b.WriteString("\n\n")

	b.WriteString("Sincerely,\n\n")
	b.WriteString(signatoryBlock(draft.Signatory))

	return []byte(b.String()), nil
}

// recipientBlock formats the addressee lines, skipping empty fields.
func recipientBlock(rec domain.Recipient) string {
	var lines []string
	if rec.Name != "" {
		lines = append(lines, rec.Name)
	}
	if rec.Title != "" {
		lines = append(lines, rec.Title)
	}
	if rec.Address != "" {
		lines = append(lines, rec.Address)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// signatoryBlock formats the signature lines. A reference signatory
// renders as its identifier; resolution happens upstream.
func signatoryBlock(sig domain.Signatory) string {
	if !sig.IsCustom() {
		if sig.ReferenceID != "" {
			return sig.ReferenceID + "\n"
		}
		return ""
	}

	c := sig.Custom
	var lines []string
	if c.Name != "" {
		lines = append(lines, c.Name)
	}
	if c.Title != "" {
		lines = append(lines, c.Title)
	}
	if c.Company != "" {
		lines = append(lines, c.Company)
	}
	if c.Phone != "" {
		lines = append(lines, c.Phone)
	}
	if c.Email != "" {
		lines = append(lines, c.Email)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
