// Package catalog provides the static content catalog: description,
// next-step and support text for every dimension and level.
//
// The catalog is built once from YAML (embedded by default), checked to be
// total over the dimension/level grid, and never mutated afterwards. A
// *Catalog is safe to share between any number of sessions.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/logger"
)

//go:embed content.yaml
var builtinYAML []byte

// Ensure Catalog implements the interface.
var _ driven.ContentCatalog = (*Catalog)(nil)

type catalogFile struct {
	Dimensions map[string]dimensionEntry `yaml:"dimensions"`
}

type dimensionEntry struct {
	Name   string       `yaml:"name"`
	Levels []levelEntry `yaml:"levels"`
}

type levelEntry struct {
	Description    string `yaml:"description"`
	Recommendation string `yaml:"recommendation"`
	Support        string `yaml:"support"`
}

const levelCount = int(domain.MaxLevel)

// Catalog is the read-only content table.
type Catalog struct {
	entries map[domain.Dimension][levelCount]domain.ContentEntry
}

// New returns the built-in catalog.
func New() (*Catalog, error) {
	c, err := Parse(builtinYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a replacement catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Open returns the catalog at path, or the built-in one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return New()
	}
	return LoadFile(path)
}

// OpenWithFallback is Open, except that a configured catalog which fails
// to load is reported as a warning and the built-in catalog is used.
func OpenWithFallback(path string) (*Catalog, error) {
	c, err := Open(path)
	if err == nil || path == "" {
		return c, err
	}
	logger.Warn("catalog %s could not be loaded, using the built-in catalog: %v", path, err)
	return New()
}

// Check reports whether the catalog at path loads.
func Check(path string) error {
	_, err := LoadFile(path)
	return err
}

// Parse builds a catalog from YAML and checks that every dimension has
// exactly four complete levels. Unknown dimensions and fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: parse catalog: %v", domain.ErrInvalidInput, err)
	}

	entries := make(map[domain.Dimension][levelCount]domain.ContentEntry, len(file.Dimensions))
	for key, dim := range file.Dimensions {
		d := domain.Dimension(key)
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: unknown dimension %q", domain.ErrInvalidInput, key)
		}
		if len(dim.Levels) != levelCount {
			return nil, fmt.Errorf("%w: %s has %d levels, want %d",
				domain.ErrInvalidInput, key, len(dim.Levels), levelCount)
		}

		exemplar := dim.Levels[levelCount-1].Description
		var row [levelCount]domain.ContentEntry
		for i, lvl := range dim.Levels {
			row[i] = domain.ContentEntry{
				Description:    lvl.Description,
				Recommendation: lvl.Recommendation,
				TopExemplar:    exemplar,
				SupportNote:    lvl.Support,
			}
			if !row[i].IsComplete() {
				return nil, fmt.Errorf("%w: %s level %d has empty text", domain.ErrInvalidInput, key, i+1)
			}
		}
		entries[d] = row
	}

	for _, d := range domain.AllDimensions() {
		if _, ok := entries[d]; !ok {
			return nil, fmt.Errorf("%w: dimension %s missing", domain.ErrInvalidInput, d)
		}
	}

	return &Catalog{entries: entries}, nil
}

// Lookup returns the entry for a dimension and level.
func (c *Catalog) Lookup(d domain.Dimension, l domain.Level) (domain.ContentEntry, error) {
	row, ok := c.entries[d]
	if !ok || !l.IsValid() {
		return domain.ContentEntry{}, &domain.NotFoundError{Dimension: d, Level: l}
	}
	return row[int(l)-1], nil
}

// TopExemplar returns the level-4 description of a dimension. It does not
// depend on the level the user chose.
func (c *Catalog) TopExemplar(d domain.Dimension) (string, error) {
	entry, err := c.Lookup(d, domain.LevelPioneering)
	if err != nil {
		return "", err
	}
	return entry.Description, nil
}

// LevelDefinitions returns the four level descriptions of a dimension.
func (c *Catalog) LevelDefinitions(d domain.Dimension) ([]domain.LevelDefinition, error) {
	defs := make([]domain.LevelDefinition, 0, levelCount)
	for _, l := range domain.AllLevels() {
		entry, err := c.Lookup(d, l)
		if err != nil {
			return nil, err
		}
		defs = append(defs, domain.LevelDefinition{
			Level:       l,
			Label:       l.Label(),
			Description: entry.Description,
		})
	}
	return defs, nil
}
