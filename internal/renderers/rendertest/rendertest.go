// Package rendertest provides fixture reports for renderer tests.
package rendertest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// GeneratedAt is the fixed timestamp of fixture reports.
var GeneratedAt = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

// Levels is the assessment behind Report: average 2.6, Self Aware.
var Levels = map[domain.Dimension]domain.Level{
	domain.DimensionGovernance:       domain.LevelForwardThinking,
	domain.DimensionOutcomeAlignment: domain.LevelSelfAware,
	domain.DimensionFaultDetection:   domain.LevelReactive,
	domain.DimensionKnowledgeCapture: domain.LevelPioneering,
	domain.DimensionProcessStructure: domain.LevelSelfAware,
}

// Report returns a complete report without brand marks.
// Every text field names its dimension so tests can check ordering.
func Report() *domain.Report {
	rows := make([]domain.ReportRow, 0, len(domain.AllDimensions()))
	for _, d := range domain.AllDimensions() {
		level := Levels[d]
		name := d.DisplayName()
		rows = append(rows, domain.ReportRow{
			Dimension:      d,
			Level:          level,
			LevelLabel:     level.Label(),
			Description:    name + " description text.",
			Recommendation: name + " recommendation text.",
			TopExemplar:    name + " exemplar text.",
			SupportNote:    name + " support text.",
		})
	}

	return &domain.Report{
		Title:    "HVAC O&M Maturity Diagnostic Report",
		Score:    domain.ScoreResult{Average: 2.6, Label: domain.LabelSelfAware},
		Rows:     rows,
		Glossary: domain.Glossary(),
		Branding: domain.Branding{
			ProductName: "Polaris",
			CompanyName: "Sustain Synergy Pte. Ltd.",
			Footer:      "© 2025 Sustain Synergy Pte. Ltd. All rights reserved.",
		},
		GeneratedAt: GeneratedAt,
	}
}

// BrandedReport returns Report with both brand marks set to small PNGs.
func BrandedReport() *domain.Report {
	r := Report()
	r.Branding.ProductMark = PNGAsset(domain.AssetProductMark, 40, 20)
	r.Branding.CompanyMark = PNGAsset(domain.AssetCompanyMark, 60, 30)
	return r
}

// PNGAsset returns a solid-colour PNG asset of the given size.
func PNGAsset(name string, w, h int) *domain.Asset {
	return &domain.Asset{
		Name:        name,
		Ref:         "test://" + name + ".png",
		ContentType: "image/png",
		Data:        PNG(w, h),
	}
}

// PNG encodes a solid-colour image.
func PNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := color.RGBA{R: 0x1f, G: 0x5f, B: 0x9f, A: 0xff}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
