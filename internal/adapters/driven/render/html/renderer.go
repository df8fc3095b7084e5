// Package html renders a draft as a standalone HTML preview.
//
// The body is treated as Markdown and converted with goldmark, then
// wrapped in a minimal document whose styles carry the draft's font
// size and line spacing.
package html

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer produces an HTML preview of a draft.
type Renderer struct {
	md  goldmark.Markdown
	now func() time.Time
}

// NewRenderer creates an HTML renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md:  goldmark.New(),
		now: time.Now,
	}
}

// Format returns the output format identifier.
func (r *Renderer) Format() string {
	return "html"
}

// Render produces a self-contained HTML document.
func (r *Renderer) Render(_ context.Context, draft *domain.Draft) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(draft.BodyText), &body); err != nil {
		return nil, fmt.Errorf("converting body: %w", err)
	}

	title := draft.DocumentType.Description()
	if draft.Subject != "" {
		title = draft.Subject
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", htmltemplate.EscapeString(title))
	fmt.Fprintf(&b, "<style>body { font-family: serif; font-size: %dpt; line-height: %.2f; max-width: 42em; margin: 2em auto; }</style>\n",
		draft.Formatting.FontSize, draft.Formatting.LineSpacing)
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<p class=\"date\">%s</p>\n", r.now().Format("2 January 2006"))

	if block := recipientHTML(draft.Recipient); block != "" {
		b.WriteString(block)
	}
	if draft.Subject != "" {
		fmt.Fprintf(&b, "<p><strong>Re: %s</strong></p>\n", htmltemplate.EscapeString(draft.Subject))
	}

	b.Write(body.Bytes())

	b.WriteString("<p>Sincerely,</p>\n")
	if block := signatoryHTML(draft.Signatory); block != "" {
		b.WriteString(block)
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

func recipientHTML(rec domain.Recipient) string {
	var lines []string
	for _, s := range []string{rec.Name, rec.Title, rec.Address} {
		if s != "" {
			lines = append(lines, htmltemplate.EscapeString(s))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "<p class=\"recipient\">" + strings.Join(lines, "<br>") + "</p>\n"
}

func signatoryHTML(sig domain.Signatory) string {
	var lines []string
	if sig.IsCustom() {
		c := sig.Custom
		for _, s := range []string{c.Name, c.Title, c.Company, c.Phone, c.Email} {
			if s != "" {
				lines = append(lines, htmltemplate.EscapeString(s))
			}
		}
	} else if sig.ReferenceID != "" {
		lines = append(lines, htmltemplate.EscapeString(sig.ReferenceID))
	}
	if len(lines) == 0 {
		return ""
	}
	return "<p class=\"signatory\">" + strings.Join(lines, "<br>") + "</p>\n"
}
