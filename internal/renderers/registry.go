// Package renderers holds the document backends and the registry that
// selects one by name. Backends are built on first use and then reused.
package renderers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.RendererRegistry = (*Registry)(nil)

// BuilderFunc creates a renderer.
type BuilderFunc func() (driven.Renderer, error)

// Registry maps backend names to their builders.
type Registry struct {
	mu       sync.Mutex
	builders map[string]BuilderFunc
	built    map[string]driven.Renderer
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
		built:    make(map[string]driven.Renderer),
	}
}

// Register adds a backend builder. Registering a name again replaces it.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = builder
	delete(r.built, name)
}

// Get returns the renderer for a backend name, building it on first use.
func (r *Registry) Get(name string) (driven.Renderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if renderer, ok := r.built[name]; ok {
		return renderer, nil
	}

	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: renderer %q", domain.ErrUnsupportedType, name)
	}

	renderer, err := builder()
	if err != nil {
		return nil, fmt.Errorf("build renderer %s: %w", name, err)
	}
	r.built[name] = renderer
	return renderer, nil
}

// Has returns true if a backend with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered backend names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
