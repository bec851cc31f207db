// Package markdown renders reports as GitHub-flavoured Markdown.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/format"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Name is the backend name.
const Name = "markdown"

// Renderer writes Markdown documents. Brand marks are linked by their
// original reference rather than embedded.
type Renderer struct{}

// New creates a Markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the backend name.
func (r *Renderer) Name() string { return Name }

// ContentType returns the MIME type of the rendered document.
func (r *Renderer) ContentType() string { return "text/markdown; charset=utf-8" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".md" }

// Render produces the Markdown document.
func (r *Renderer) Render(ctx context.Context, report *domain.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	writeCover(&b, report)
	writeSummary(&b, report)
	for _, row := range report.Rows {
		writeSection(&b, row, productName(report))
	}
	writeClosing(&b, report)

	return []byte(b.String()), nil
}

func writeCover(b *strings.Builder, report *domain.Report) {
	fmt.Fprintf(b, "# %s\n\n", report.Title)

	brand := report.Branding
	if ref := assetRef(brand.CompanyMark); ref != "" {
		fmt.Fprintf(b, "![%s](%s)\n\n", brand.CompanyName, ref)
	}
	if ref := assetRef(brand.ProductMark); ref != "" {
		fmt.Fprintf(b, "![%s](%s)\n\n", brand.ProductName, ref)
	}

	fmt.Fprintf(b, "**Overall Maturity Level:** %s  \n", report.Score.Label.DisplayName())
	fmt.Fprintf(b, "**Average Score:** %s\n\n", report.Score.FormattedAverage())
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(b, "_Generated %s_\n\n", report.GeneratedAt.Format("2 January 2006"))
	}

	if len(report.Glossary) == 0 {
		return
	}
	b.WriteString("## Maturity Levels\n\n")
	for _, entry := range report.Glossary {
		fmt.Fprintf(b, "- **Level %d - %s:** %s\n", int(entry.Level), entry.Label.DisplayName(), entry.Definition)
	}
	b.WriteString("\n")
}

func writeSummary(b *strings.Builder, report *domain.Report) {
	b.WriteString("## Summary\n\n")

	t := format.NewTable(format.Markdown)
	t.Header("Dimension", "Level", "Label")
	for _, row := range report.Rows {
		t.Row(row.Dimension.DisplayName(), int(row.Level), row.LevelLabel.DisplayName())
	}
	t.Columns(format.ColumnConfig{Number: 2, Align: format.AlignCenter})

	b.WriteString(t.String())
	b.WriteString("\n\n")
}

func writeSection(b *strings.Builder, row domain.ReportRow, product string) {
	fmt.Fprintf(b, "## %s\n\n", row.Heading())
	fmt.Fprintf(b, "**Description:** %s\n\n", row.Description)
	fmt.Fprintf(b, "**Next Step:** %s\n\n", row.Recommendation)
	fmt.Fprintf(b, "> **What Pioneering Looks Like**\n>\n> %s\n\n", row.TopExemplar)
	fmt.Fprintf(b, "**How %s Helps:** %s\n\n", product, row.SupportNote)
}

func writeClosing(b *strings.Builder, report *domain.Report) {
	brand := report.Branding
	b.WriteString("---\n\n")
	if brand.ProductName != "" && brand.CompanyName != "" {
		fmt.Fprintf(b, "Prepared with %s by %s\n\n", brand.ProductName, brand.CompanyName)
	}
	if brand.Footer != "" {
		fmt.Fprintf(b, "%s\n", brand.Footer)
	}
}

func productName(report *domain.Report) string {
	if report.Branding.ProductName == "" {
		return "the Platform"
	}
	return report.Branding.ProductName
}

// assetRef returns the link for a mark. File references are not portable,
// so only http(s) links are written.
func assetRef(asset *domain.Asset) string {
	if asset == nil {
		return ""
	}
	if strings.HasPrefix(asset.Ref, "http://") || strings.HasPrefix(asset.Ref, "https://") {
		return asset.Ref
	}
	return ""
}
