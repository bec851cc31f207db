package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// ListDimensionsInput is the input schema for the list_dimensions tool.
type ListDimensionsInput struct {
	Dimension string `json:"dimension,omitempty" jsonschema:"only describe this dimension (key or name); omit for all five"`
}

// ListDimensionsOutput is the output schema for the list_dimensions tool.
type ListDimensionsOutput struct {
	Dimensions []DimensionOutput `json:"dimensions"`
}

// DimensionOutput describes one dimension and what each level means.
type DimensionOutput struct {
	Dimension string        `json:"dimension"`
	Name      string        `json:"name"`
	Levels    []LevelOutput `json:"levels"`
}

// LevelOutput describes one level of a dimension.
type LevelOutput struct {
	Level       int    `json:"level"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ScoreInput is the input schema for the score_assessment tool.
type ScoreInput struct {
	Levels map[string]int `json:"levels" jsonschema:"level 1-4 for each of governance, outcome_alignment, fault_detection, knowledge_capture, process_structure"`
}

// ScoreOutput is the output schema for the score_assessment tool.
type ScoreOutput struct {
	Average          float64     `json:"average"`
	FormattedAverage string      `json:"formatted_average"`
	Label            string      `json:"label"`
	Rows             []RowOutput `json:"rows"`
}

// RowOutput is the resolved content for one dimension.
type RowOutput struct {
	Heading        string `json:"heading"`
	Dimension      string `json:"dimension"`
	Level          int    `json:"level"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	TopExemplar    string `json:"top_exemplar"`
	SupportNote    string `json:"support_note"`
}

// ExportInput is the input schema for the export_report tool.
type ExportInput struct {
	Levels    map[string]int `json:"levels" jsonschema:"level 1-4 for each of the five dimensions"`
	Backend   string         `json:"backend,omitempty" jsonschema:"pdf, html, markdown or chromepdf (default from settings)"`
	Title     string         `json:"title,omitempty" jsonschema:"report title (default from settings)"`
	Glossary  *bool          `json:"glossary,omitempty" jsonschema:"include maturity level definitions (default from settings)"`
	Directory string         `json:"directory,omitempty" jsonschema:"directory to write the report to (default: current directory)"`
}

// ExportOutput is the output schema for the export_report tool.
type ExportOutput struct {
	Path        string   `json:"path"`
	ContentType string   `json:"content_type"`
	Bytes       int      `json:"bytes"`
	Warnings    []string `json:"warnings,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_dimensions",
		Description: "List the five HVAC O&M dimensions and what each maturity level (1-4) means",
	}, s.handleListDimensions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "score_assessment",
		Description: "Score a complete assessment and return the overall maturity level with next steps per dimension",
	}, s.handleScore)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_report",
		Description: "Render the maturity report document for an assessment and write it to disk",
	}, s.handleExport)
}

// handleListDimensions handles the list_dimensions tool invocation.
func (s *Server) handleListDimensions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListDimensionsInput,
) (*mcp.CallToolResult, ListDimensionsOutput, error) {
	dims := domain.AllDimensions()
	if input.Dimension != "" {
		d, err := domain.ParseDimension(input.Dimension)
		if err != nil {
			return nil, ListDimensionsOutput{}, err
		}
		dims = []domain.Dimension{d}
	}

	output := ListDimensionsOutput{Dimensions: make([]DimensionOutput, 0, len(dims))}
	for _, d := range dims {
		defs, err := s.ports.Report.LevelDefinitions(d)
		if err != nil {
			return nil, ListDimensionsOutput{}, err
		}

		item := DimensionOutput{
			Dimension: d.String(),
			Name:      d.DisplayName(),
			Levels:    make([]LevelOutput, len(defs)),
		}
		for i, def := range defs {
			item.Levels[i] = LevelOutput{
				Level:       int(def.Level),
				Label:       def.Label.DisplayName(),
				Description: def.Description,
			}
		}
		output.Dimensions = append(output.Dimensions, item)
	}

	return nil, output, nil
}

// handleScore handles the score_assessment tool invocation.
func (s *Server) handleScore(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ScoreInput,
) (*mcp.CallToolResult, ScoreOutput, error) {
	a, err := assessmentFrom(input.Levels)
	if err != nil {
		return nil, ScoreOutput{}, err
	}

	summary, err := s.ports.Report.Summary(a)
	if err != nil {
		return nil, ScoreOutput{}, err
	}

	output := ScoreOutput{
		Average:          summary.Score.Average,
		FormattedAverage: summary.Score.FormattedAverage(),
		Label:            summary.Score.Label.DisplayName(),
		Rows:             make([]RowOutput, len(summary.Rows)),
	}
	for i, row := range summary.Rows {
		output.Rows[i] = RowOutput{
			Heading:        row.Heading(),
			Dimension:      row.Dimension.String(),
			Level:          int(row.Level),
			Description:    row.Description,
			Recommendation: row.Recommendation,
			TopExemplar:    row.TopExemplar,
			SupportNote:    row.SupportNote,
		}
	}

	return nil, output, nil
}

// handleExport handles the export_report tool invocation.
func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	a, err := assessmentFrom(input.Levels)
	if err != nil {
		return nil, ExportOutput{}, err
	}

	opts := domain.ExportOptions{
		Backend:  input.Backend,
		Title:    input.Title,
		Glossary: input.Glossary,
	}
	artifact, err := s.ports.Report.Export(ctx, a, opts)
	if err != nil {
		return nil, ExportOutput{}, err
	}

	dir := input.Directory
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ExportOutput{}, fmt.Errorf("creating directory: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(dir, artifact.Filename))
	if err != nil {
		return nil, ExportOutput{}, fmt.Errorf("resolving path: %w", err)
	}
	if err := os.WriteFile(path, artifact.Data, 0o600); err != nil {
		return nil, ExportOutput{}, fmt.Errorf("writing report: %w", err)
	}

	return nil, ExportOutput{
		Path:        path,
		ContentType: artifact.ContentType,
		Bytes:       len(artifact.Data),
		Warnings:    artifact.Warnings,
	}, nil
}

// assessmentFrom builds a complete assessment from dimension keys to levels.
func assessmentFrom(levels map[string]int) (*domain.Assessment, error) {
	answers := make(map[string]domain.Level, len(levels))
	for key, level := range levels {
		answers[key] = domain.Level(level)
	}
	a, err := domain.ParseAnswers(answers)
	if err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
