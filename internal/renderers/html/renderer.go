// Package html renders reports as a self-contained HTML document.
// Brand marks are inlined as data URIs so the file has no external references.
package html

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Name is the backend name.
const Name = "html"

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// Renderer executes the embedded report template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded template.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Name returns the backend name.
func (r *Renderer) Name() string { return Name }

// ContentType returns the MIME type of the rendered document.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".html" }

// Render produces the HTML document.
func (r *Renderer) Render(ctx context.Context, report *domain.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, err := r.HTML(report)
	if err != nil {
		return nil, err
	}
	return []byte(page), nil
}

// HTML returns the report as an HTML string.
func (r *Renderer) HTML(report *domain.Report) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, newView(report)); err != nil {
		return "", &domain.RenderError{Backend: Name, Err: err}
	}
	return buf.String(), nil
}

// view is the template data.
type view struct {
	*domain.Report

	ProductName string
	Generated   string
	ProductMark template.URL
	CompanyMark template.URL
}

func newView(report *domain.Report) view {
	v := view{
		Report:      report,
		ProductName: report.Branding.ProductName,
		ProductMark: dataURI(report.Branding.ProductMark),
		CompanyMark: dataURI(report.Branding.CompanyMark),
	}
	if v.ProductName == "" {
		v.ProductName = "the Platform"
	}
	if !report.GeneratedAt.IsZero() {
		v.Generated = report.GeneratedAt.Format("2 January 2006")
	}
	return v
}

// dataURI inlines an image asset. Only raster types the fetcher accepts are
// inlined; anything else is dropped.
func dataURI(asset *domain.Asset) template.URL {
	if asset == nil || len(asset.Data) == 0 {
		return ""
	}
	switch asset.ContentType {
	case "image/png", "image/jpeg", "image/gif":
	default:
		return ""
	}
	//nolint:gosec // G203: content type is restricted to raster images above
	return template.URL("data:" + asset.ContentType + ";base64," + base64.StdEncoding.EncodeToString(asset.Data))
}
