// Package assets loads branding images for exported documents.
//
// References starting with http:// or https:// are downloaded; anything
// else is read as a file path. Only PNG, JPEG and GIF images are accepted,
// since those are what every render backend can embed. Loaded images are
// cached for the life of the process.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.AssetFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultMaxBytes = 5 << 20
)

var supportedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// Config holds configuration for the asset fetcher.
type Config struct {
	// Timeout bounds each download (default: 10s).
	Timeout time.Duration

	// MaxBytes is the largest accepted image (default: 5 MiB).
	MaxBytes int64

	// Client overrides the HTTP client. Timeout is ignored when set.
	Client *http.Client
}

// Fetcher loads branding images by URL or path.
type Fetcher struct {
	client   *http.Client
	maxBytes int64

	mu    sync.RWMutex
	cache map[string]*domain.Asset
}

// NewFetcher creates a new asset fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Fetcher{
		client:   client,
		maxBytes: cfg.MaxBytes,
		cache:    make(map[string]*domain.Asset),
	}
}

// Fetch loads the asset at ref. Failures are returned as
// *domain.AssetUnavailableError and are not cached, so a later export
// retries them.
func (f *Fetcher) Fetch(ctx context.Context, name, ref string) (*domain.Asset, error) {
	f.mu.RLock()
	cached, ok := f.cache[ref]
	f.mu.RUnlock()
	if ok {
		return withName(cached, name), nil
	}

	data, err := f.read(ctx, ref)
	if err != nil {
		return nil, &domain.AssetUnavailableError{Asset: name, Ref: ref, Err: err}
	}

	contentType, err := f.validate(data)
	if err != nil {
		return nil, &domain.AssetUnavailableError{Asset: name, Ref: ref, Err: err}
	}

	asset := &domain.Asset{Name: name, Ref: ref, ContentType: contentType, Data: data}

	f.mu.Lock()
	f.cache[ref] = asset
	f.mu.Unlock()

	logger.Debug("Loaded %s from %s (%s, %d bytes)", name, ref, contentType, len(data))
	return withName(asset, name), nil
}

func (f *Fetcher) read(ctx context.Context, ref string) ([]byte, error) {
	if isURL(ref) {
		return f.download(ctx, ref)
	}

	file, err := os.Open(strings.TrimPrefix(ref, "file://"))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return f.readLimited(file)
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return f.readLimited(resp.Body)
}

func (f *Fetcher) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("larger than %d bytes", f.maxBytes)
	}
	return data, nil
}

// validate sniffs the type and decodes the image header so a corrupt file
// is caught here rather than inside a renderer.
func (f *Fetcher) validate(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty file")
	}
	contentType := http.DetectContentType(data)
	if !supportedTypes[contentType] {
		return "", fmt.Errorf("unsupported content type %s", contentType)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	return contentType, nil
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func withName(a *domain.Asset, name string) *domain.Asset {
	out := *a
	out.Name = name
	return &out
}
