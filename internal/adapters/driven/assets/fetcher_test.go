package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetcher_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0600))

	f := NewFetcher(Config{})
	asset, err := f.Fetch(context.Background(), domain.AssetProductMark, path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", asset.ContentType)
	assert.Equal(t, domain.AssetProductMark, asset.Name)
	assert.Equal(t, path, asset.Ref)

	viaScheme, err := f.Fetch(context.Background(), domain.AssetCompanyMark, "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, asset.Data, viaScheme.Data)
}

func TestFetcher_FromURL_Cached(t *testing.T) {
	var hits atomic.Int32
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	f := NewFetcher(Config{Client: srv.Client()})
	first, err := f.Fetch(context.Background(), domain.AssetProductMark, srv.URL+"/app_logo.png")
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), domain.AssetCompanyMark, srv.URL+"/app_logo.png")
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, domain.AssetCompanyMark, second.Name)
	assert.Equal(t, domain.AssetProductMark, first.Name, "cached copies are independent")
}

func TestFetcher_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.png":
			http.NotFound(w, r)
		case "/page.html":
			_, _ = w.Write([]byte("<html><body>not an image</body></html>"))
		case "/corrupt.png":
			_, _ = w.Write([]byte("\x89PNG\r\n\x1a\ngarbage"))
		}
	}))
	defer srv.Close()

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"404", srv.URL + "/missing.png", "status 404"},
		{"not an image", srv.URL + "/page.html", "unsupported content type"},
		{"corrupt image", srv.URL + "/corrupt.png", "decode image"},
		{"missing file", filepath.Join(t.TempDir(), "none.png"), "no such file"},
	}

	f := NewFetcher(Config{Client: srv.Client()})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Fetch(context.Background(), domain.AssetCompanyMark, tt.ref)
			require.ErrorIs(t, err, domain.ErrAssetUnavailable)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "company_mark")
		})
	}
}

func TestFetcher_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0600))

	f := NewFetcher(Config{MaxBytes: 10})
	_, err := f.Fetch(context.Background(), domain.AssetProductMark, path)
	require.ErrorIs(t, err, domain.ErrAssetUnavailable)
	assert.Contains(t, err.Error(), "larger than 10 bytes")
}

func TestFetcher_FailureNotCached(t *testing.T) {
	var ready atomic.Bool
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	f := NewFetcher(Config{Client: srv.Client()})
	_, err := f.Fetch(context.Background(), domain.AssetProductMark, srv.URL)
	require.Error(t, err)

	ready.Store(true)
	_, err = f.Fetch(context.Background(), domain.AssetProductMark, srv.URL)
	assert.NoError(t, err)
}

func TestFetcher_ContextCancelled(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(Config{Client: srv.Client()})
	_, err := f.Fetch(ctx, domain.AssetProductMark, srv.URL)
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
