package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
	"github.com/custodia-labs/omdiag/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService runs the report pipeline:
// collect assessment -> score -> resolve rows -> render.
type ReportService struct {
	catalog   driven.ContentCatalog
	scoring   driving.ScoringService
	renderers driven.RendererRegistry
	assets    driven.AssetFetcher
	settings  driving.SettingsService
	now       func() time.Time
}

// NewReportService creates a new report service.
// assets and settings may be nil; documents are then produced without
// branding marks and with default settings.
func NewReportService(
	catalog driven.ContentCatalog,
	scoring driving.ScoringService,
	renderers driven.RendererRegistry,
	assets driven.AssetFetcher,
	settings driving.SettingsService,
) *ReportService {
	return &ReportService{
		catalog:   catalog,
		scoring:   scoring,
		renderers: renderers,
		assets:    assets,
		settings:  settings,
		now:       time.Now,
	}
}

// Compose resolves the catalog rows for a complete assessment.
// Rows always follow the declared dimension order.
func (s *ReportService) Compose(a *domain.Assessment) ([]domain.ReportRow, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	dims := domain.AllDimensions()
	rows := make([]domain.ReportRow, 0, len(dims))
	for _, d := range dims {
		l, _ := a.Level(d)

		entry, err := s.catalog.Lookup(d, l)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", d, err)
		}
		exemplar, err := s.catalog.TopExemplar(d)
		if err != nil {
			return nil, fmt.Errorf("resolve %s exemplar: %w", d, err)
		}

		rows = append(rows, domain.ReportRow{
			Dimension:      d,
			Level:          l,
			LevelLabel:     l.Label(),
			Description:    entry.Description,
			Recommendation: entry.Recommendation,
			TopExemplar:    exemplar,
			SupportNote:    entry.SupportNote,
		})
	}

	return rows, nil
}

// Summary scores the assessment and resolves its rows.
func (s *ReportService) Summary(a *domain.Assessment) (*domain.Summary, error) {
	score, err := s.scoring.Score(a)
	if err != nil {
		return nil, err
	}

	rows, err := s.Compose(a)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{Score: score, Rows: rows}, nil
}

// Export renders the assessment to a named document.
// Branding assets that cannot be loaded are skipped with a warning.
func (s *ReportService) Export(
	ctx context.Context, a *domain.Assessment, opts domain.ExportOptions,
) (*domain.Artifact, error) {
	logger.Section("Report Export")

	settings := s.currentSettings()
	opts = opts.ApplyDefaults(settings.Report)

	renderer, err := s.renderers.Get(opts.Backend)
	if err != nil {
		return nil, err
	}

	summary, err := s.Summary(a)
	if err != nil {
		return nil, err
	}
	logger.Debug("Score: %s (%s)", summary.Score.FormattedAverage(), summary.Score.Label)

	branding, warnings := s.resolveBranding(ctx, settings.Branding)
	report := buildReport(opts, summary, branding)
	report.GeneratedAt = s.now()

	logger.Debug("Rendering with backend %q", renderer.Name())
	data, err := renderer.Render(ctx, report)
	if err != nil {
		if errors.Is(err, domain.ErrRender) {
			return nil, err
		}
		return nil, &domain.RenderError{Backend: renderer.Name(), Err: err}
	}

	artifact := &domain.Artifact{
		Filename:    opts.FilenameBase + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Data:        data,
		Warnings:    warnings,
	}
	logger.Info("Rendered %s (%d bytes, %d warnings)", artifact.Filename, len(data), len(warnings))
	return artifact, nil
}

// LevelDefinitions returns what each level means for a dimension.
func (s *ReportService) LevelDefinitions(d domain.Dimension) ([]domain.LevelDefinition, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: unknown dimension %q", domain.ErrInvalidInput, d)
	}
	return s.catalog.LevelDefinitions(d)
}

// Backends returns the available render backend names.
func (s *ReportService) Backends() []string {
	return s.renderers.Names()
}

// buildReport assembles the renderer input. Catalog text and the title are
// sanitised; numbers and dimension names are left alone.
func buildReport(opts domain.ExportOptions, summary *domain.Summary, branding domain.Branding) *domain.Report {
	rows := make([]domain.ReportRow, len(summary.Rows))
	for i, row := range summary.Rows {
		rows[i] = row.Sanitized()
	}

	var glossary []domain.GlossaryEntry
	if opts.IncludeGlossary() {
		glossary = domain.Glossary()
		for i := range glossary {
			glossary[i].Definition = domain.Sanitize(glossary[i].Definition)
		}
	}

	return &domain.Report{
		Title:    domain.Sanitize(opts.Title),
		Score:    summary.Score,
		Rows:     rows,
		Glossary: glossary,
		Branding: branding,
	}
}

// resolveBranding loads the brand marks. Every failure becomes a warning
// and the corresponding mark is left nil.
func (s *ReportService) resolveBranding(
	ctx context.Context, cfg domain.BrandingSettings,
) (domain.Branding, []string) {
	branding := domain.Branding{
		ProductName: cfg.ProductName,
		CompanyName: cfg.CompanyName,
		Footer:      cfg.Footer,
	}
	if s.assets == nil {
		return branding, nil
	}

	var warnings []string
	load := func(name, ref string) *domain.Asset {
		if ref == "" {
			return nil
		}
		asset, err := s.assets.Fetch(ctx, name, ref)
		if err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			warnings = append(warnings, err.Error())
			return nil
		}
		return asset
	}

	branding.ProductMark = load(domain.AssetProductMark, cfg.ProductMark)
	branding.CompanyMark = load(domain.AssetCompanyMark, cfg.CompanyMark)
	return branding, warnings
}

func (s *ReportService) currentSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}
