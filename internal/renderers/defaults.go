package renderers

import (
	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/renderers/chromepdf"
	"github.com/custodia-labs/omdiag/internal/renderers/html"
	"github.com/custodia-labs/omdiag/internal/renderers/markdown"
	"github.com/custodia-labs/omdiag/internal/renderers/pdf"
)

// Options configures the built-in backends.
type Options struct {
	// ChromePath is the browser used by the chromepdf backend.
	// Empty means search the usual install locations.
	ChromePath string
}

// RegisterDefaults registers all built-in backends with the registry.
func RegisterDefaults(r *Registry, opts Options) {
	r.Register(domain.RenderBackendPDF.String(), func() (driven.Renderer, error) {
		return pdf.New(), nil
	})
	r.Register(domain.RenderBackendHTML.String(), func() (driven.Renderer, error) {
		return html.New()
	})
	r.Register(domain.RenderBackendMarkdown.String(), func() (driven.Renderer, error) {
		return markdown.New(), nil
	})
	r.Register(domain.RenderBackendChromePDF.String(), func() (driven.Renderer, error) {
		page, err := html.New()
		if err != nil {
			return nil, err
		}
		return chromepdf.New(page, chromepdf.Config{ExecPath: opts.ChromePath}), nil
	})
}

// NewDefaultRegistry returns a registry with every built-in backend.
func NewDefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	RegisterDefaults(r, opts)
	return r
}
