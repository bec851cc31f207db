package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for omdiag resources.
	uriScheme = "omdiag://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "glossary",
		Name:        "glossary",
		Description: "Definitions of the four maturity levels",
		MIMEType:    "application/json",
	}, s.handleGlossaryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "dimensions/{dimension}/levels",
		Name:        "dimension-levels",
		Description: "What each level means for a dimension",
		MIMEType:    "application/json",
	}, s.handleLevelsResource)
}

// handleGlossaryResource returns the maturity label definitions.
func (s *Server) handleGlossaryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type entry struct {
		Level      int    `json:"level"`
		Label      string `json:"label"`
		Definition string `json:"definition"`
	}

	glossary := domain.Glossary()
	entries := make([]entry, len(glossary))
	for i, g := range glossary {
		entries[i] = entry{
			Level:      int(g.Level),
			Label:      g.Label.DisplayName(),
			Definition: g.Definition,
		}
	}

	return jsonResource(req.Params.URI, entries)
}

// handleLevelsResource returns the level definitions for one dimension.
func (s *Server) handleLevelsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	key := extractDimension(req.Params.URI)
	d, err := domain.ParseDimension(key)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	defs, err := s.ports.Report.LevelDefinitions(d)
	if err != nil {
		return nil, fmt.Errorf("getting level definitions: %w", err)
	}

	levels := make([]LevelOutput, len(defs))
	for i, def := range defs {
		levels[i] = LevelOutput{
			Level:       int(def.Level),
			Label:       def.Label.DisplayName(),
			Description: def.Description,
		}
	}

	return jsonResource(req.Params.URI, DimensionOutput{
		Dimension: d.String(),
		Name:      d.DisplayName(),
		Levels:    levels,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDimension extracts the dimension from a URI like omdiag://dimensions/{dimension}/levels.
func extractDimension(uri string) string {
	const prefix = uriScheme + "dimensions/"
	const suffix = "/levels"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
}
