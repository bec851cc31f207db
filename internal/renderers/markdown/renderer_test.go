package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/renderers/rendertest"
)

func render(t *testing.T, report *domain.Report) string {
	t.Helper()
	data, err := New().Render(context.Background(), report)
	require.NoError(t, err)
	return string(data)
}

func TestRenderer_Metadata(t *testing.T) {
	r := New()
	assert.Equal(t, "markdown", r.Name())
	assert.Equal(t, "text/markdown; charset=utf-8", r.ContentType())
	assert.Equal(t, ".md", r.Extension())
}

func TestRenderer_Cover(t *testing.T) {
	doc := render(t, rendertest.Report())

	assert.True(t, strings.HasPrefix(doc, "# HVAC O&M Maturity Diagnostic Report\n"))
	assert.Contains(t, doc, "**Overall Maturity Level:** Self Aware")
	assert.Contains(t, doc, "**Average Score:** 2.60")
	assert.Contains(t, doc, "_Generated 14 March 2025_")
	assert.Contains(t, doc, "- **Level 1 - Reactive:**")
}

func TestRenderer_SummaryTable(t *testing.T) {
	doc := render(t, rendertest.Report())

	assert.Contains(t, doc, "## Summary")
	assert.Regexp(t, `\|\s*Dimension\s*\|\s*Level\s*\|\s*Label\s*\|`, doc)
	assert.Regexp(t, `\|\s*Knowledge Capture\s*\|\s*4\s*\|\s*Pioneering\s*\|`, doc)
}

func TestRenderer_SectionsInDeclaredOrder(t *testing.T) {
	doc := render(t, rendertest.Report())

	last := -1
	for _, d := range domain.AllDimensions() {
		idx := strings.Index(doc, "## "+d.DisplayName()+" - Level")
		require.Greater(t, idx, last, "section for %s out of order", d)
		last = idx
	}

	assert.Contains(t, doc, "**Description:** Governance description text.")
	assert.Contains(t, doc, "**Next Step:** Governance recommendation text.")
	assert.Contains(t, doc, "> Governance exemplar text.")
	assert.Contains(t, doc, "**How Polaris Helps:** Governance support text.")
}

func TestRenderer_NoGlossary(t *testing.T) {
	report := rendertest.Report()
	report.Glossary = nil

	assert.NotContains(t, render(t, report), "## Maturity Levels")
}

func TestRenderer_BrandMarkLinks(t *testing.T) {
	report := rendertest.BrandedReport()
	report.Branding.CompanyMark.Ref = "https://example.com/company.png"

	doc := render(t, report)
	assert.Contains(t, doc, "![Sustain Synergy Pte. Ltd.](https://example.com/company.png)")
	// The product mark fixture has a non-http reference.
	assert.NotContains(t, doc, "test://")
}

func TestRenderer_Closing(t *testing.T) {
	doc := render(t, rendertest.Report())

	assert.Contains(t, doc, "Prepared with Polaris by Sustain Synergy Pte. Ltd.")
	assert.True(t, strings.HasSuffix(doc, "All rights reserved.\n"))
}

func TestRenderer_DefaultProductName(t *testing.T) {
	report := rendertest.Report()
	report.Branding.ProductName = ""

	doc := render(t, report)
	assert.Contains(t, doc, "**How the Platform Helps:**")
	assert.NotContains(t, doc, "Prepared with")
}
