package domain

import (
	"fmt"
	"time"
)

// ReportRow is the resolved catalog content for one dimension of an
// assessment. It is a pure projection with no state of its own.
type ReportRow struct {
	Dimension      Dimension
	Level          Level
	LevelLabel     MaturityLabel
	Description    string
	Recommendation string
	TopExemplar    string
	SupportNote    string
}

// Heading returns the section heading, e.g. "Governance - Level 3 (Forward Thinking)".
func (r ReportRow) Heading() string {
	return fmt.Sprintf("%s - Level %d (%s)", r.Dimension.DisplayName(), int(r.Level), r.LevelLabel.DisplayName())
}

// Sanitized returns a copy of the row with Sanitize applied to its free text.
func (r ReportRow) Sanitized() ReportRow {
	r.Description = Sanitize(r.Description)
	r.Recommendation = Sanitize(r.Recommendation)
	r.TopExemplar = Sanitize(r.TopExemplar)
	r.SupportNote = Sanitize(r.SupportNote)
	return r
}

// Summary is the on-screen result: the score and the rows in declared order.
type Summary struct {
	Score ScoreResult
	Rows  []ReportRow
}

// Asset names for the two branding images.
const (
	AssetProductMark = "product_mark"
	AssetCompanyMark = "company_mark"
)

// Asset is a loaded branding image.
type Asset struct {
	// Name is the logical asset name (AssetProductMark, AssetCompanyMark).
	Name string

	// Ref is the URL or path the asset was loaded from.
	Ref string

	// ContentType is the sniffed MIME type, e.g. "image/png".
	ContentType string

	// Data is the raw image bytes.
	Data []byte
}

// Branding carries the brand marks and text placed on a document.
// Either mark may be nil when it could not be loaded.
type Branding struct {
	ProductName string
	CompanyName string
	Footer      string
	ProductMark *Asset
	CompanyMark *Asset
}

// Report is everything a renderer needs to produce a document.
// Free-text fields are already sanitised. Renderers derive every
// timestamp from GeneratedAt so equal reports render to equal bytes.
type Report struct {
	Title       string
	Score       ScoreResult
	Rows        []ReportRow
	Glossary    []GlossaryEntry
	Branding    Branding
	GeneratedAt time.Time
}

// ExportOptions control a single document export.
// Zero values fall back to the configured defaults.
type ExportOptions struct {
	// Backend is the renderer name (see RenderBackend).
	Backend string

	// Title overrides the report title.
	Title string

	// Glossary includes the maturity label definitions on the cover.
	// Nil uses the configured default.
	Glossary *bool

	// FilenameBase is the attachment name without extension.
	FilenameBase string
}

// IncludeGlossary reports whether the glossary is requested.
func (o ExportOptions) IncludeGlossary() bool {
	return o.Glossary != nil && *o.Glossary
}

// WithGlossary returns a copy of the options with the glossary set.
func (o ExportOptions) WithGlossary(on bool) ExportOptions {
	o.Glossary = &on
	return o
}

// Artifact is a rendered document offered as a named download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte

	// Warnings lists recovered problems, such as a missing branding asset.
	Warnings []string
}
