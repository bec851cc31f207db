// Command omdiag is the HVAC O&M maturity diagnostic.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/omdiag/internal/adapters/driven/assets"
	"github.com/custodia-labs/omdiag/internal/adapters/driven/catalog"
	"github.com/custodia-labs/omdiag/internal/adapters/driven/config/file"
	"github.com/custodia-labs/omdiag/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/omdiag/internal/adapters/driving/cli"
	"github.com/custodia-labs/omdiag/internal/core/services"
	"github.com/custodia-labs/omdiag/internal/renderers"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore(os.Getenv("OMDIAG_HOME"))
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore,
		services.WithCatalogCheck(catalog.Check))

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	content, err := catalog.OpenWithFallback(settings.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	registry := renderers.NewDefaultRegistry(renderers.Options{
		ChromePath: os.Getenv("OMDIAG_CHROME"),
	})
	scoringService := services.NewScoringService()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Scoring: scoringService,
		Report: services.NewReportService(
			content, scoringService, registry,
			assets.NewFetcher(assets.Config{}), settingsService,
		),
		Assessment: services.NewAssessmentService(memory.NewSessionStore()),
		Settings:   settingsService,
	})

	return cli.ExecuteContext(ctx)
}
