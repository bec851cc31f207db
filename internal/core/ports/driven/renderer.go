package driven

import (
	"context"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// Renderer turns a composed report into document bytes.
// Backends are interchangeable; scoring never depends on them.
type Renderer interface {
	// Name returns the backend name used in settings and flags.
	Name() string

	// ContentType returns the MIME type of the rendered document.
	ContentType() string

	// Extension returns the file extension including the dot, e.g. ".pdf".
	Extension() string

	// Render produces the document. Equal reports produce equal bytes.
	Render(ctx context.Context, report *domain.Report) ([]byte, error)
}

// RendererRegistry resolves backends by name.
type RendererRegistry interface {
	// Get returns the renderer for a backend name.
	// Returns domain.ErrUnsupportedType if none is registered.
	Get(name string) (Renderer, error)

	// Names returns the registered backend names in sorted order.
	Names() []string
}
