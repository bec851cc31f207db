package domain

// RenderBackend identifies a document rendering backend.
type RenderBackend string

// Available render backends.
const (
	// RenderBackendPDF draws the document directly with a PDF library.
	RenderBackendPDF RenderBackend = "pdf"

	// RenderBackendHTML produces a standalone HTML page.
	RenderBackendHTML RenderBackend = "html"

	// RenderBackendMarkdown produces a Markdown document.
	RenderBackendMarkdown RenderBackend = "markdown"

	// RenderBackendChromePDF prints the HTML document to PDF with headless Chrome.
	RenderBackendChromePDF RenderBackend = "chromepdf"
)

// IsValid returns true if the backend is recognised.
func (b RenderBackend) IsValid() bool {
	switch b {
	case RenderBackendPDF, RenderBackendHTML, RenderBackendMarkdown, RenderBackendChromePDF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b RenderBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b RenderBackend) Description() string {
	switch b {
	case RenderBackendPDF:
		return "PDF (built-in)"
	case RenderBackendHTML:
		return "HTML page"
	case RenderBackendMarkdown:
		return "Markdown"
	case RenderBackendChromePDF:
		return "PDF via headless Chrome"
	default:
		return unknownDescription
	}
}

// AllRenderBackends returns all available render backends.
func AllRenderBackends() []RenderBackend {
	return []RenderBackend{
		RenderBackendPDF,
		RenderBackendHTML,
		RenderBackendMarkdown,
		RenderBackendChromePDF,
	}
}

// ReportSettings holds document export configuration.
type ReportSettings struct {
	// Title is the report title on the cover.
	Title string

	// Backend is the default render backend.
	Backend RenderBackend

	// Glossary includes maturity label definitions on the cover.
	Glossary bool

	// FilenameBase is the download name without extension.
	FilenameBase string
}

// BrandingSettings holds the brand marks and text.
type BrandingSettings struct {
	// ProductName is the product named in support text headings.
	ProductName string

	// CompanyName appears in the closing branding block.
	CompanyName string

	// Footer is the running footer text on pages after the cover.
	Footer string

	// ProductMark is a URL or file path to the product logo.
	ProductMark string

	// CompanyMark is a URL or file path to the company logo.
	CompanyMark string
}

// CatalogSettings holds content catalog configuration.
type CatalogSettings struct {
	// Path is an optional YAML file replacing the built-in catalog.
	Path string
}

// ServerSettings holds HTTP server configuration.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string

	// ExportRate is the sustained number of document exports per second.
	ExportRate float64

	// ExportBurst is the maximum export burst.
	ExportBurst int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Report   ReportSettings
	Branding BrandingSettings
	Catalog  CatalogSettings
	Server   ServerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Report: ReportSettings{
			Title:        "HVAC O&M Maturity Diagnostic Report",
			Backend:      RenderBackendPDF,
			Glossary:     true,
			FilenameBase: "HVAC_OM_Maturity_Report",
		},
		Branding: BrandingSettings{
			ProductName: "Polaris",
			CompanyName: "Sustain Synergy Pte. Ltd.",
			Footer:      "© 2025 Sustain Synergy Pte. Ltd. All rights reserved.",
			ProductMark: "https://raw.githubusercontent.com/SwarupSG/hvac-om-maturity-app/main/app_logo.png",
			CompanyMark: "https://raw.githubusercontent.com/SwarupSG/hvac-om-maturity-app/main/company_logo.png",
		},
		Server: ServerSettings{
			Addr:        ":8080",
			ExportRate:  2.0,
			ExportBurst: 5,
		},
	}
}

// ApplyDefaults fills empty export options from the report settings.
func (o ExportOptions) ApplyDefaults(s ReportSettings) ExportOptions {
	if o.Backend == "" {
		o.Backend = s.Backend.String()
	}
	if o.Title == "" {
		o.Title = s.Title
	}
	if o.FilenameBase == "" {
		o.FilenameBase = s.FilenameBase
	}
	if o.Glossary == nil {
		o = o.WithGlossary(s.Glossary)
	}
	return o
}
