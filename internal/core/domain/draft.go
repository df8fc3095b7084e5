package domain

import "strings"

const unknownDescription = "Unknown"

// DocumentType identifies the kind of letter being drafted.
type DocumentType string

// Available document types.
const (
	// DocTypeBusiness is a general business letter.
	DocTypeBusiness DocumentType = "business"

	// DocTypeCover is a job-application cover letter.
	DocTypeCover DocumentType = "cover"

	// DocTypeResignation is a resignation letter.
	DocTypeResignation DocumentType = "resignation"

	// DocTypeReference is a reference/recommendation letter.
	DocTypeReference DocumentType = "reference"

	// DocTypeComplaint is a formal complaint letter.
	DocTypeComplaint DocumentType = "complaint"

	// DocTypeThankYou is a thank-you letter.
	DocTypeThankYou DocumentType = "thank_you"

	// DocTypeCustom is a free-form document with no preset structure.
	DocTypeCustom DocumentType = "custom"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTypeBusiness, DocTypeCover, DocTypeResignation,
		DocTypeReference, DocTypeComplaint, DocTypeThankYou, DocTypeCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Description returns a human-readable description of the type.
func (t DocumentType) Description() string {
	switch t {
	case DocTypeBusiness:
		return "Business Letter"
	case DocTypeCover:
		return "Cover Letter"
	case DocTypeResignation:
		return "Resignation Letter"
	case DocTypeReference:
		return "Reference Letter"
	case DocTypeComplaint:
		return "Complaint Letter"
	case DocTypeThankYou:
		return "Thank-You Letter"
	case DocTypeCustom:
		return "Custom Document"
	default:
		return unknownDescription
	}
}

// AllDocumentTypes returns all available document types.
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocTypeBusiness,
		DocTypeCover,
		DocTypeResignation,
		DocTypeReference,
		DocTypeComplaint,
		DocTypeThankYou,
		DocTypeCustom,
	}
}

// CustomSignatory is an inline signatory record entered by the user.
type CustomSignatory struct {
	// Name is the signatory's full name. Required before export.
	Name string `json:"name"`

	// Title is the signatory's job title.
	Title string `json:"title,omitempty"`

	// Company is the signatory's organisation.
	Company string `json:"company,omitempty"`

	// Phone is a contact phone number.
	Phone string `json:"phone,omitempty"`

	// Email is a contact email address.
	Email string `json:"email,omitempty"`
}

// Signatory identifies who signs the document. Exactly one of
// ReferenceID or Custom is active at a time.
type Signatory struct {
	// ReferenceID points to a known signatory profile.
	// Empty when a custom signatory is in use.
	ReferenceID string `json:"reference_id,omitempty"`

	// Custom is an inline signatory record.
	// Nil when a reference signatory is in use.
	Custom *CustomSignatory `json:"custom,omitempty"`
}

// IsCustom returns true if an inline custom signatory is active.
func (s Signatory) IsCustom() bool {
	return s.Custom != nil
}

// Validate checks the one-of invariant between reference and custom.
func (s Signatory) Validate() error {
	if s.ReferenceID != "" && s.Custom != nil {
		return ErrInvalidInput
	}
	return nil
}

// Recipient holds the addressee fields. All fields are optional.
type Recipient struct {
	// Name is the recipient's full name.
	Name string `json:"name,omitempty"`

	// Title is the recipient's job title or honorific.
	Title string `json:"title,omitempty"`

	// Address is the postal address, possibly multi-line.
	Address string `json:"address,omitempty"`
}

// Formatting bounds.
const (
	// MinFontSize is the smallest allowed font size in points.
	MinFontSize = 9

	// MaxFontSize is the largest allowed font size in points.
	MaxFontSize = 14

	// MinLineSpacing is the tightest allowed line spacing multiplier.
	MinLineSpacing = 1.0

	// MaxLineSpacing is the loosest allowed line spacing multiplier.
	MaxLineSpacing = 2.5
)

// Formatting holds the document's visual formatting options.
type Formatting struct {
	// FontSize is the body font size in points (9-14).
	FontSize int `json:"font_size"`

	// LineSpacing is the line spacing multiplier (1.0-2.5).
	LineSpacing float64 `json:"line_spacing"`
}

// Validate checks that formatting values fall within the allowed bounds.
func (f Formatting) Validate() error {
	if f.FontSize < MinFontSize || f.FontSize > MaxFontSize {
		return ErrInvalidInput
	}
	if f.LineSpacing < MinLineSpacing || f.LineSpacing > MaxLineSpacing {
		return ErrInvalidInput
	}
	return nil
}

// Draft is the authoritative in-memory document state being edited.
type Draft struct {
	// DocumentType is the kind of letter being drafted.
	DocumentType DocumentType `json:"document_type"`

	// Signatory is who signs the document.
	Signatory Signatory `json:"signatory"`

	// Recipient is who the document is addressed to.
	Recipient Recipient `json:"recipient"`

	// Subject is an optional subject line.
	Subject string `json:"subject,omitempty"`

	// BodyText is the main document body. May be empty while editing.
	BodyText string `json:"body_text"`

	// Formatting holds font size and line spacing.
	Formatting Formatting `json:"formatting"`
}

// DefaultDraft returns a draft with type defaults applied.
func DefaultDraft() Draft {
	return Draft{
		DocumentType: DocTypeBusiness,
		Formatting: Formatting{
			FontSize:    11,
			LineSpacing: 1.15,
		},
	}
}

// IsBlank returns true if the body contains no visible text.
func (d *Draft) IsBlank() bool {
	return strings.TrimSpace(d.BodyText) == ""
}

// ExportReady reports whether the draft can be handed to a renderer.
// The body must be non-blank and a custom signatory must carry a name.
func (d *Draft) ExportReady() error {
	if d.IsBlank() {
		return ErrEmptyBody
	}
	if err := d.Signatory.Validate(); err != nil {
		return err
	}
	if d.Signatory.IsCustom() && strings.TrimSpace(d.Signatory.Custom.Name) == "" {
		return ErrSignatoryUnnamed
	}
	return nil
}
