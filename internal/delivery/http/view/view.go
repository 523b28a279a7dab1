// Package view renders the server-side contact page.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"portfolio-contact-backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// ContactInfo is one entry of the contact details column.
type ContactInfo struct {
	Label string
	Value string
	Href  string
}

// DefaultContactInfo lists the site owner's public contact details.
var DefaultContactInfo = []ContactInfo{
	{Label: "Email", Value: "likitajoel@gmail.com", Href: "mailto:likitajoel@gmail.com"},
	{Label: "Phone", Value: "+2349061614369", Href: "tel:+2349061614369"},
	{Label: "Location", Value: "Gombe, Nigeria", Href: "https://www.google.com/maps/place/Gombe,+Nigeria"},
}

// FieldView is the render model of a single input.
type FieldView struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
	Disabled    bool // rendered read-only so the value is still posted
	Multiline   bool
}

// ContactPage is the render model of the whole page.
type ContactPage struct {
	Fields      []FieldView
	Submitting  bool
	Submitted   bool
	Notice      string
	Unavailable bool
	ContactInfo []ContactInfo
}

var fieldMeta = map[domain.Field]FieldView{
	domain.FieldName:    {Label: "Name", Type: "text", Placeholder: "Your full name"},
	domain.FieldEmail:   {Label: "Email", Type: "email", Placeholder: "your.email@example.com"},
	domain.FieldSubject: {Label: "Subject", Type: "text", Placeholder: "Project inquiry"},
	domain.FieldMessage: {Label: "Message", Placeholder: "Tell me about your project...", Multiline: true},
}

// FieldsLocked reports whether the inputs after the name are inert.
// This is a UX gate only; validation does not depend on it.
func FieldsLocked(data domain.FormData) bool {
	return strings.TrimSpace(data.Name) == ""
}

// NewContactPage builds the render model from a controller snapshot.
func NewContactPage(snap domain.FormSnapshot, info []ContactInfo) ContactPage {
	locked := FieldsLocked(snap.Data)

	fields := make([]FieldView, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		fv := fieldMeta[f]
		fv.Name = string(f)
		fv.Value = snap.Data.Get(f)
		fv.Error = snap.Errors[f]
		fv.Disabled = f != domain.FieldName && locked
		fields = append(fields, fv)
	}

	return ContactPage{
		Fields:      fields,
		Submitting:  snap.State == domain.StateSubmitting,
		Submitted:   snap.State == domain.StateSubmitted,
		Notice:      snap.Notice,
		ContactInfo: info,
	}
}

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderContact writes the contact page or the confirmation view.
func (r *Renderer) RenderContact(w io.Writer, page ContactPage) error {
	if page.Submitted {
		return r.tmpl.ExecuteTemplate(w, "submitted.html", page)
	}
	return r.tmpl.ExecuteTemplate(w, "contact.html", page)
}
