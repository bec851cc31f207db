package driven

import (
	"context"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// AssetFetcher loads branding images by reference.
type AssetFetcher interface {
	// Fetch loads the asset at ref, which is a URL or a file path.
	// Returns a *domain.AssetUnavailableError when the asset cannot be
	// loaded or is not a supported image.
	Fetch(ctx context.Context, name, ref string) (*domain.Asset, error)
}
