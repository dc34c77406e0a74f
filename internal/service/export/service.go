package export

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"

	"github.com/resumeforge/backend/internal/model/resume"
	"github.com/resumeforge/backend/internal/model/template"
)

// Renderer turns rendered HTML into PDF bytes. PDF rendering is an external
// collaborator; the service only depends on this contract.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Service renders a resume document through a selected template.
type Service struct {
	templates template.Store
	renderer  Renderer
}

// NewService wires the exporter to the template catalogue and a renderer.
func NewService(templates template.Store, renderer Renderer) *Service {
	return &Service{templates: templates, renderer: renderer}
}

// RenderHTML executes the selected template against the document. An
// unknown or empty template id falls back to the default template.
func (s *Service) RenderHTML(doc resume.Document, templateID string) (string, error) {
	tpl, ok := s.templates.FindByID(templateID)
	if !ok {
		tpl, ok = s.templates.FindByID(template.DefaultID)
		if !ok {
			return "", fmt.Errorf("template %q not found and no default available", templateID)
		}
	}

	parsed, err := htmltemplate.New(tpl.ID).Parse(tpl.HTML)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", tpl.ID, err)
	}

	var buf bytes.Buffer
	if err := parsed.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render template %s: %w", tpl.ID, err)
	}
	return buf.String(), nil
}

// ExportPDF renders the document and hands the HTML to the PDF renderer.
func (s *Service) ExportPDF(ctx context.Context, doc resume.Document, templateID string) ([]byte, error) {
	html, err := s.RenderHTML(doc, templateID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderHTMLToPDF(ctx, html)
}
