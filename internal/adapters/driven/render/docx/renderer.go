// Package docx renders a draft into a Word letterhead template.
//
// The template is a regular .docx file carrying bracketed placeholders
// such as [Body] or [RecipientName]. Rendering opens the template,
// substitutes every placeholder (including headers and footers) and
// returns the resulting document bytes.
package docx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyenthenguyen/docx"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer fills a .docx letterhead template from a draft.
type Renderer struct {
	templatePath string
	now          func() time.Time
}

// NewRenderer creates a docx renderer backed by the template at
// templatePath. The template must exist and be readable.
func NewRenderer(templatePath string) (*Renderer, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("letterhead template: %w", err)
	}
	return &Renderer{
		templatePath: templatePath,
		now:          time.Now,
	}, nil
}

// Format returns the output format identifier.
func (r *Renderer) Format() string {
	return "docx"
}

// Render opens the template and substitutes all placeholders.
func (r *Renderer) Render(_ context.Context, draft *domain.Draft) ([]byte, error) {
	reader, err := docx.ReadDocxFile(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	defer reader.Close()

	editable := reader.Editable()

	for token, value := range r.replacements(draft) {
		placeholder := "[" + token + "]"
		if err := editable.Replace(placeholder, value, -1); err != nil {
			return nil, fmt.Errorf("replacing %s: %w", placeholder, err)
		}
		// Headers and footers commonly carry the date and company.
		if err := editable.ReplaceHeader(placeholder, value); err != nil {
			return nil, fmt.Errorf("replacing %s in header: %w", placeholder, err)
		}
		if err := editable.ReplaceFooter(placeholder, value); err != nil {
			return nil, fmt.Errorf("replacing %s in footer: %w", placeholder, err)
		}
	}

	var buf bytes.Buffer
	if err := editable.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return buf.Bytes(), nil
}

// replacements maps template tokens to draft values. Unused tokens
// are replaced with the empty string so no placeholder survives.
func (r *Renderer) replacements(draft *domain.Draft) map[string]string {
	m := map[string]string{
		"Date":             r.now().Format("2 January 2006"),
		"DocumentType":     draft.DocumentType.Description(),
		"RecipientName":    draft.Recipient.Name,
		"RecipientTitle":   draft.Recipient.Title,
		"RecipientAddress": draft.Recipient.Address,
		"Subject":          draft.Subject,
		"Body":             draft.BodyText,
		"SignatoryName":    "",
		"SignatoryTitle":   "",
		"SignatoryCompany": "",
		"SignatoryPhone":   "",
		"SignatoryEmail":   "",
	}

	if draft.Signatory.IsCustom() {
		c := draft.Signatory.Custom
		m["SignatoryName"] = c.Name
		m["SignatoryTitle"] = c.Title
		m["SignatoryCompany"] = c.Company
		m["SignatoryPhone"] = c.Phone
		m["SignatoryEmail"] = c.Email
	} else {
		m["SignatoryName"] = draft.Signatory.ReferenceID
	}

	return m
}
