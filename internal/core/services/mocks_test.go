package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockCatalog implements driven.ContentCatalog over a generated grid.
// Text carries typographic punctuation so sanitisation is observable.
type mockCatalog struct {
	missing map[domain.Dimension]bool
}

func (m *mockCatalog) Lookup(d domain.Dimension, l domain.Level) (domain.ContentEntry, error) {
	if !d.IsValid() || !l.IsValid() || m.missing[d] {
		return domain.ContentEntry{}, &domain.NotFoundError{Dimension: d, Level: l}
	}
	return domain.ContentEntry{
		Description:    fmt.Sprintf("%s L%d – description", d, int(l)),
		Recommendation: fmt.Sprintf("%s L%d “next”", d, int(l)),
		TopExemplar:    fmt.Sprintf("%s L4 – description", d),
		SupportNote:    fmt.Sprintf("%s L%d • support’s note", d, int(l)),
	}, nil
}

func (m *mockCatalog) TopExemplar(d domain.Dimension) (string, error) {
	entry, err := m.Lookup(d, domain.LevelPioneering)
	if err != nil {
		return "", err
	}
	return entry.Description, nil
}

func (m *mockCatalog) LevelDefinitions(d domain.Dimension) ([]domain.LevelDefinition, error) {
	defs := make([]domain.LevelDefinition, 0, 4)
	for _, l := range domain.AllLevels() {
		entry, err := m.Lookup(d, l)
		if err != nil {
			return nil, err
		}
		defs = append(defs, domain.LevelDefinition{Level: l, Label: l.Label(), Description: entry.Description})
	}
	return defs, nil
}

// mockRenderer implements driven.Renderer and records its last input.
type mockRenderer struct {
	name string
	err  error

	mu   sync.Mutex
	last *domain.Report
}

func (m *mockRenderer) Name() string        { return m.name }
func (m *mockRenderer) ContentType() string { return "application/x-test" }
func (m *mockRenderer) Extension() string   { return ".test" }

func (m *mockRenderer) Render(_ context.Context, report *domain.Report) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = report
	if m.err != nil {
		return nil, m.err
	}
	return []byte("doc:" + report.Title), nil
}

func (m *mockRenderer) lastReport() *domain.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// mockRegistry implements driven.RendererRegistry.
type mockRegistry map[string]driven.Renderer

func (m mockRegistry) Get(name string) (driven.Renderer, error) {
	r, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: renderer %q", domain.ErrUnsupportedType, name)
	}
	return r, nil
}

func (m mockRegistry) Names() []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// mockFetcher implements driven.AssetFetcher. Refs listed in fail are
// reported unavailable.
type mockFetcher struct {
	fail map[string]bool

	mu      sync.Mutex
	fetched []string
}

func (m *mockFetcher) Fetch(_ context.Context, name, ref string) (*domain.Asset, error) {
	m.mu.Lock()
	m.fetched = append(m.fetched, ref)
	m.mu.Unlock()

	if m.fail[ref] {
		return nil, &domain.AssetUnavailableError{Asset: name, Ref: ref, Err: errors.New("404 Not Found")}
	}
	return &domain.Asset{Name: name, Ref: ref, ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}, nil
}

// failingConfigStore implements driven.ConfigStore with a Save that fails.
type failingConfigStore struct {
	driven.ConfigStore
}

func (f failingConfigStore) Save() error { return errors.New("disk full") }

func uniformAssessment(l domain.Level) *domain.Assessment {
	a := domain.NewAssessment()
	for _, d := range domain.AllDimensions() {
		_ = a.Set(d, l)
	}
	return a
}
