// Package chromepdf prints the HTML report to PDF with a headless Chrome.
// The output depends on the installed browser and is not byte-stable.
//
// Chrome applies one footer template to every printed page, so unlike the
// built-in pdf backend the "<footer> | Page N" line also appears on the
// cover page. Page numbers count the cover as page 1 in both backends.
// Use the pdf backend when the cover must carry no footer.
package chromepdf

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/logger"
	htmlrenderer "github.com/custodia-labs/omdiag/internal/renderers/html"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Name is the backend name.
const Name = "chromepdf"

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// A4 in inches.
	paperWidth  = 8.27
	paperHeight = 11.69
	marginInch  = 0.6
)

// Config holds browser settings.
type Config struct {
	// ExecPath is the Chrome or Chromium binary. Empty lets chromedp search.
	ExecPath string

	// Timeout bounds a single print, including browser start-up.
	Timeout time.Duration
}

// Renderer prints the HTML backend's output.
type Renderer struct {
	page *htmlrenderer.Renderer
	cfg  Config
}

// New creates a Chrome-backed PDF renderer.
func New(p *htmlrenderer.Renderer, cfg Config) *Renderer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Renderer{page: p, cfg: cfg}
}

// Name returns the backend name.
func (r *Renderer) Name() string { return Name }

// ContentType returns the MIME type of the rendered document.
func (r *Renderer) ContentType() string { return "application/pdf" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".pdf" }

// Render starts a browser, loads the HTML report and prints it.
func (r *Renderer) Render(ctx context.Context, report *domain.Report) ([]byte, error) {
	doc, err := r.page.HTML(report)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	logger.Debug("Printing report with headless Chrome")

	var out []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			out, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(marginInch).
				WithMarginBottom(marginInch).
				WithMarginLeft(marginInch).
				WithMarginRight(marginInch).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate("<span></span>").
				WithFooterTemplate(footerTemplate(report.Branding.Footer)).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &domain.RenderError{Backend: Name, Err: err}
	}
	return out, nil
}

// footerTemplate builds Chrome's print footer, printed on every page
// including the cover. Chrome fills the pageNumber span itself.
func footerTemplate(footer string) string {
	prefix := ""
	if footer != "" {
		prefix = html.EscapeString(footer) + " | "
	}
	return `<div style="font-size:8px;color:#6e6e6e;width:100%;text-align:center;">` +
		prefix + `Page <span class="pageNumber"></span></div>`
}
