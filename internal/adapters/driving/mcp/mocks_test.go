package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	artifact *domain.Artifact
	err      error

	lastOpts domain.ExportOptions
}

func (m *mockReportService) Compose(a *domain.Assessment) ([]domain.ReportRow, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	rows := make([]domain.ReportRow, 0, 5)
	for _, d := range domain.AllDimensions() {
		l, _ := a.Level(d)
		rows = append(rows, domain.ReportRow{
			Dimension:      d,
			Level:          l,
			LevelLabel:     l.Label(),
			Description:    fmt.Sprintf("%s description", d),
			Recommendation: fmt.Sprintf("%s next", d),
			TopExemplar:    fmt.Sprintf("%s exemplar", d),
			SupportNote:    fmt.Sprintf("%s support", d),
		})
	}
	return rows, nil
}

func (m *mockReportService) Summary(a *domain.Assessment) (*domain.Summary, error) {
	rows, err := m.Compose(a)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, r := range rows {
		sum += int(r.Level)
	}
	avg := float64(sum) / 5
	return &domain.Summary{
		Score: domain.ScoreResult{Average: avg, Label: domain.Level(int(avg)).Label()},
		Rows:  rows,
	}, nil
}

func (m *mockReportService) Export(
	_ context.Context, a *domain.Assessment, opts domain.ExportOptions,
) (*domain.Artifact, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return m.artifact, nil
}

func (m *mockReportService) LevelDefinitions(d domain.Dimension) ([]domain.LevelDefinition, error) {
	if !d.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	defs := make([]domain.LevelDefinition, 0, 4)
	for _, l := range domain.AllLevels() {
		defs = append(defs, domain.LevelDefinition{
			Level:       l,
			Label:       l.Label(),
			Description: fmt.Sprintf("%s level %d", d, int(l)),
		})
	}
	return defs, nil
}

func (m *mockReportService) Backends() []string {
	return []string{"markdown", "pdf"}
}

func completeLevels() map[string]int {
	return map[string]int{
		"governance":        3,
		"outcome_alignment": 3,
		"fault_detection":   3,
		"knowledge_capture": 3,
		"process_structure": 3,
	}
}
