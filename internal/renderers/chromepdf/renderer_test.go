package chromepdf

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	htmlrenderer "github.com/custodia-labs/omdiag/internal/renderers/html"
	"github.com/custodia-labs/omdiag/internal/renderers/rendertest"
)

func newRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()
	p, err := htmlrenderer.New()
	require.NoError(t, err)
	return New(p, cfg)
}

func findChrome(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no Chrome or Chromium binary found")
	return ""
}

func TestRenderer_Metadata(t *testing.T) {
	r := newRenderer(t, Config{})
	assert.Equal(t, "chromepdf", r.Name())
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, ".pdf", r.Extension())
	assert.Equal(t, DefaultTimeout, r.cfg.Timeout)
}

func TestFooterTemplate(t *testing.T) {
	tmpl := footerTemplate("© 2025 A & B")
	assert.Contains(t, tmpl, "© 2025 A &amp; B | Page ")
	assert.Contains(t, tmpl, `<span class="pageNumber"></span>`)

	assert.NotContains(t, footerTemplate(""), " | ")
}

func TestRenderer_MissingBrowser(t *testing.T) {
	r := newRenderer(t, Config{
		ExecPath: filepath.Join(t.TempDir(), "no-such-chrome"),
		Timeout:  10 * time.Second,
	})

	_, err := r.Render(context.Background(), rendertest.Report())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRender)
}

func TestRenderer_Render(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a browser")
	}
	chrome := findChrome(t)

	r := newRenderer(t, Config{ExecPath: chrome, Timeout: time.Minute})
	data, err := r.Render(context.Background(), rendertest.BrandedReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
