// Package pdf renders reports to PDF with the go-pdf/fpdf library.
//
// Layout: a cover page (company mark, product mark, title, overall label,
// average, optional glossary), body pages with a running header mark and a
// "<footer> | Page N" footer, one section per dimension, and a closing
// branding block. Output is byte-identical for equal reports.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Name is the backend name.
const Name = "pdf"

// Default configuration values.
const (
	DefaultPageSize = "A4"

	margin        = 15.0
	bottomMargin  = 20.0
	bodyTop       = 30.0
	headerMarkH   = 12.0
	coverMarkW    = 50.0
	productMarkW  = 35.0
	closingMarkW  = 40.0
	maxMarkHeight = 40.0
	fontFamily    = "Helvetica"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithPageSize sets the page size ("A4", "Letter", ...).
func WithPageSize(size string) Option {
	return func(r *Renderer) {
		if size != "" {
			r.pageSize = size
		}
	}
}

// WithCompression toggles content stream compression.
func WithCompression(on bool) Option {
	return func(r *Renderer) {
		r.compress = on
	}
}

// Renderer draws reports directly as PDF.
type Renderer struct {
	pageSize string
	compress bool
}

// New creates a PDF renderer with the given options.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		pageSize: DefaultPageSize,
		compress: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the backend name.
func (r *Renderer) Name() string { return Name }

// ContentType returns the MIME type of the rendered document.
func (r *Renderer) ContentType() string { return "application/pdf" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".pdf" }

// Render draws the report.
func (r *Renderer) Render(ctx context.Context, report *domain.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := r.newDocument(report)
	d.cover()
	d.body()
	d.closing()

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, &domain.RenderError{Backend: Name, Err: err}
	}
	return buf.Bytes(), nil
}

// document holds the state of one render.
type document struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	report *domain.Report

	pageW, pageH float64
	hasProduct   bool
	hasCompany   bool
}

func (r *Renderer) newDocument(report *domain.Report) *document {
	pdf := fpdf.New("P", "mm", r.pageSize, "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)

	created := report.GeneratedAt
	if created.IsZero() {
		created = time.Unix(0, 0)
	}
	pdf.SetCreationDate(created.UTC())

	pdf.SetTitle(report.Title, true)
	pdf.SetAuthor(report.Branding.CompanyName, true)
	pdf.SetCreator("omdiag", true)

	d := &document{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		report: report,
	}
	d.pageW, d.pageH = pdf.GetPageSize()
	d.hasProduct = d.registerMark(report.Branding.ProductMark)
	d.hasCompany = d.registerMark(report.Branding.CompanyMark)

	pdf.SetHeaderFunc(d.header)
	pdf.SetFooterFunc(d.footer)
	return d
}

// registerMark adds a brand image to the document. The image is tried on a
// scratch document first so that an image fpdf cannot parse is skipped
// instead of putting the real document into an error state.
func (d *document) registerMark(asset *domain.Asset) bool {
	if asset == nil || len(asset.Data) == 0 {
		return false
	}

	opts := fpdf.ImageOptions{ImageType: imageType(asset.ContentType)}
	if opts.ImageType == "" {
		logger.Warn("Skipping %s: unsupported image type %s", asset.Name, asset.ContentType)
		return false
	}

	probe := fpdf.New("P", "mm", "A4", "")
	probe.RegisterImageOptionsReader(asset.Name, opts, bytes.NewReader(asset.Data))
	if probe.Err() {
		logger.Warn("Skipping %s: %v", asset.Name, probe.Error())
		return false
	}

	d.pdf.RegisterImageOptionsReader(asset.Name, opts, bytes.NewReader(asset.Data))
	return !d.pdf.Err()
}

func imageType(contentType string) string {
	switch contentType {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}

func (d *document) header() {
	if d.pdf.PageNo() == 1 {
		return
	}

	if d.hasProduct {
		if w, h := d.markSize(domain.AssetProductMark, 0, headerMarkH); w > 0 {
			d.pdf.ImageOptions(domain.AssetProductMark, d.pageW-margin-w, 8, w, h, false, fpdf.ImageOptions{}, 0, "")
		}
	}

	d.pdf.SetFont(fontFamily, "I", 9)
	d.pdf.SetTextColor(110, 110, 110)
	d.pdf.SetXY(margin, 10)
	d.pdf.CellFormat(0, 6, d.tr(d.report.Title), "", 0, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetY(bodyTop)
}

func (d *document) footer() {
	if d.pdf.PageNo() == 1 {
		return
	}

	text := fmt.Sprintf("Page %d", d.pdf.PageNo())
	if d.report.Branding.Footer != "" {
		text = d.report.Branding.Footer + " | " + text
	}

	d.pdf.SetY(-15)
	d.pdf.SetFont(fontFamily, "I", 8)
	d.pdf.SetTextColor(110, 110, 110)
	d.pdf.CellFormat(0, 10, d.tr(text), "", 0, "C", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *document) cover() {
	pdf := d.pdf
	pdf.AddPage()

	pdf.SetY(25)
	if d.hasCompany {
		d.centeredImage(domain.AssetCompanyMark, coverMarkW)
	}
	if pdf.GetY() < 70 {
		pdf.SetY(70)
	}
	if d.hasProduct {
		d.centeredImage(domain.AssetProductMark, productMarkW)
	}

	pdf.SetFont(fontFamily, "B", 22)
	pdf.MultiCell(0, 11, d.tr(d.report.Title), "", "C", false)
	pdf.Ln(8)

	score := d.report.Score
	pdf.SetFont(fontFamily, "", 15)
	pdf.CellFormat(0, 10, d.tr("Overall Maturity Level: "+score.Label.DisplayName()), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, "Average Score: "+score.FormattedAverage(), "", 1, "C", false, 0, "")

	if !d.report.GeneratedAt.IsZero() {
		pdf.SetFont(fontFamily, "", 10)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 8, "Generated "+d.report.GeneratedAt.Format("2 January 2006"), "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	if len(d.report.Glossary) == 0 {
		return
	}

	pdf.Ln(12)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, "Maturity Levels", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	for _, entry := range d.report.Glossary {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("Level %d - %s", int(entry.Level), entry.Label.DisplayName()), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.MultiCell(0, 5, d.tr(entry.Definition), "", "L", false)
		pdf.Ln(2)
	}
}

func (d *document) body() {
	pdf := d.pdf
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, 7, "Average Score: "+d.report.Score.FormattedAverage(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, d.tr("Overall Maturity Level: "+d.report.Score.Label.DisplayName()), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	d.summaryTable()
	pdf.Ln(8)

	product := d.report.Branding.ProductName
	if product == "" {
		product = "the Platform"
	}

	for _, row := range d.report.Rows {
		d.ensureSpace(45)

		pdf.SetFont(fontFamily, "B", 13)
		pdf.CellFormat(0, 9, d.tr(row.Heading()), "B", 1, "L", false, 0, "")
		pdf.Ln(2)

		d.field("Description", row.Description)
		d.field("Next Step", row.Recommendation)
		d.callout("What Pioneering Looks Like", row.TopExemplar)
		d.field("How "+product+" Helps", row.SupportNote)
		pdf.Ln(4)
	}
}

func (d *document) summaryTable() {
	pdf := d.pdf
	widths := []float64{80, 25, 0}
	widths[2] = d.pageW - 2*margin - widths[0] - widths[1]

	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Dimension", "Level", "Label"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	for _, row := range d.report.Rows {
		pdf.CellFormat(widths[0], 7, row.Dimension.DisplayName(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.Level.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.LevelLabel.DisplayName(), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}

func (d *document) field(label, text string) {
	d.pdf.SetFont(fontFamily, "B", 11)
	d.pdf.CellFormat(0, 6, d.tr(label+":"), "", 1, "L", false, 0, "")
	d.pdf.SetFont(fontFamily, "", 11)
	d.pdf.MultiCell(0, 6, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *document) callout(label, text string) {
	d.pdf.SetFillColor(234, 242, 250)
	d.pdf.SetFont(fontFamily, "B", 10)
	d.pdf.CellFormat(0, 6, d.tr(label), "", 1, "L", true, 0, "")
	d.pdf.SetFont(fontFamily, "I", 10)
	d.pdf.MultiCell(0, 5, d.tr(text), "", "L", true)
	d.pdf.SetFillColor(255, 255, 255)
	d.pdf.Ln(2)
}

func (d *document) closing() {
	pdf := d.pdf
	d.ensureSpace(70)
	pdf.Ln(6)

	y := pdf.GetY()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(margin, y, d.pageW-margin, y)
	pdf.Ln(6)

	b := d.report.Branding
	if b.ProductName != "" && b.CompanyName != "" {
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(0, 6, d.tr(fmt.Sprintf("Prepared with %s by %s", b.ProductName, b.CompanyName)), "", 1, "C", false, 0, "")
	}
	if b.Footer != "" {
		pdf.SetFont(fontFamily, "", 9)
		pdf.CellFormat(0, 6, d.tr(b.Footer), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	if d.hasCompany {
		d.centeredImage(domain.AssetCompanyMark, closingMarkW)
	}
}

// ensureSpace starts a new page unless h millimetres remain.
func (d *document) ensureSpace(h float64) {
	if d.pdf.GetY()+h > d.pageH-bottomMargin {
		d.pdf.AddPage()
	}
}

// markSize scales a registered image to the given width or height,
// keeping its aspect ratio. Returns zero if the image is unknown.
func (d *document) markSize(name string, w, h float64) (float64, float64) {
	info := d.pdf.GetImageInfo(name)
	if info == nil || info.Width() == 0 || info.Height() == 0 {
		return 0, 0
	}
	ratio := info.Height() / info.Width()
	if w > 0 {
		h = w * ratio
	} else {
		w = h / ratio
	}
	if h > maxMarkHeight {
		h = maxMarkHeight
		w = h / ratio
	}
	return w, h
}

func (d *document) centeredImage(name string, width float64) {
	w, h := d.markSize(name, width, 0)
	if w == 0 {
		return
	}
	d.ensureSpace(h + 6)
	y := d.pdf.GetY()
	d.pdf.ImageOptions(name, (d.pageW-w)/2, y, w, h, false, fpdf.ImageOptions{}, 0, "")
	d.pdf.SetY(y + h + 6)
}
