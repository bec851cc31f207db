package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyReportTitle      = "report.title"
	keyReportBackend    = "report.backend"
	keyReportGlossary   = "report.glossary"
	keyReportFilename   = "report.filename"
	keyBrandProductName = "branding.product_name"
	keyBrandCompanyName = "branding.company_name"
	keyBrandFooter      = "branding.footer"
	keyBrandProductMark = "branding.product_mark"
	keyBrandCompanyMark = "branding.company_mark"
	keyCatalogPath      = "catalog.path"
	keyServerAddr       = "server.addr"
	keyServerRate       = "server.export_rate"
	keyServerBurst      = "server.export_burst"
)

// SettingKeys returns every settings key in display order.
func SettingKeys() []string {
	return []string{
		keyReportTitle, keyReportBackend, keyReportGlossary, keyReportFilename,
		keyBrandProductName, keyBrandCompanyName, keyBrandFooter,
		keyBrandProductMark, keyBrandCompanyMark,
		keyCatalogPath,
		keyServerAddr, keyServerRate, keyServerBurst,
	}
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore  driven.ConfigStore
	checkCatalog func(path string) error
}

// SettingsOption configures a SettingsService.
type SettingsOption func(*SettingsService)

// WithCatalogCheck makes Set reject a catalog.path that check cannot load.
func WithCatalogCheck(check func(path string) error) SettingsOption {
	return func(s *SettingsService) {
		s.checkCatalog = check
	}
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, opts ...SettingsOption) *SettingsService {
	s := &SettingsService{
		configStore: configStore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves current application settings.
// Missing or malformed values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Report: domain.ReportSettings{
			Title:        s.getString(keyReportTitle, defaults.Report.Title),
			Backend:      s.getBackend(defaults.Report.Backend),
			Glossary:     s.getBool(keyReportGlossary, defaults.Report.Glossary),
			FilenameBase: s.getString(keyReportFilename, defaults.Report.FilenameBase),
		},
		Branding: domain.BrandingSettings{
			ProductName: s.getString(keyBrandProductName, defaults.Branding.ProductName),
			CompanyName: s.getString(keyBrandCompanyName, defaults.Branding.CompanyName),
			Footer:      s.getString(keyBrandFooter, defaults.Branding.Footer),
			ProductMark: s.getOptional(keyBrandProductMark, defaults.Branding.ProductMark),
			CompanyMark: s.getOptional(keyBrandCompanyMark, defaults.Branding.CompanyMark),
		},
		Catalog: domain.CatalogSettings{
			Path: s.configStore.GetString(keyCatalogPath),
		},
		Server: domain.ServerSettings{
			Addr:        s.getString(keyServerAddr, defaults.Server.Addr),
			ExportRate:  s.getFloat(keyServerRate, defaults.Server.ExportRate),
			ExportBurst: s.getInt(keyServerBurst, defaults.Server.ExportBurst),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyReportTitle, settings.Report.Title},
		{keyReportBackend, settings.Report.Backend.String()},
		{keyReportGlossary, settings.Report.Glossary},
		{keyReportFilename, settings.Report.FilenameBase},
		{keyBrandProductName, settings.Branding.ProductName},
		{keyBrandCompanyName, settings.Branding.CompanyName},
		{keyBrandFooter, settings.Branding.Footer},
		{keyBrandProductMark, settings.Branding.ProductMark},
		{keyBrandCompanyMark, settings.Branding.CompanyMark},
		{keyCatalogPath, settings.Catalog.Path},
		{keyServerAddr, settings.Server.Addr},
		{keyServerRate, settings.Server.ExportRate},
		{keyServerBurst, settings.Server.ExportBurst},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// Set updates a single setting by its dotted key and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyReportTitle:
		settings.Report.Title = value
	case keyReportBackend:
		backend := domain.RenderBackend(strings.ToLower(value))
		if !backend.IsValid() {
			return fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidInput, value)
		}
		settings.Report.Backend = backend
	case keyReportGlossary:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.Report.Glossary = b
	case keyReportFilename:
		settings.Report.FilenameBase = value
	case keyBrandProductName:
		settings.Branding.ProductName = value
	case keyBrandCompanyName:
		settings.Branding.CompanyName = value
	case keyBrandFooter:
		settings.Branding.Footer = value
	case keyBrandProductMark:
		settings.Branding.ProductMark = value
	case keyBrandCompanyMark:
		settings.Branding.CompanyMark = value
	case keyCatalogPath:
		if value != "" && s.checkCatalog != nil {
			if err := s.checkCatalog(value); err != nil {
				return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
			}
		}
		settings.Catalog.Path = value
	case keyServerAddr:
		settings.Server.Addr = value
	case keyServerRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.Server.ExportRate = f
	case keyServerBurst:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Server.ExportBurst = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := validateSettings(settings); err != nil {
		return err
	}
	return s.Save(settings)
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func validateSettings(settings *domain.AppSettings) error {
	if !settings.Report.Backend.IsValid() {
		return fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidInput, settings.Report.Backend)
	}
	if strings.TrimSpace(settings.Report.Title) == "" {
		return fmt.Errorf("%w: report title must not be empty", domain.ErrInvalidInput)
	}
	name := settings.Report.FilenameBase
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: invalid report filename %q", domain.ErrInvalidInput, name)
	}
	if settings.Server.ExportRate <= 0 {
		return fmt.Errorf("%w: export rate must be positive", domain.ErrInvalidInput)
	}
	if settings.Server.ExportBurst < 1 {
		return fmt.Errorf("%w: export burst must be at least 1", domain.ErrInvalidInput)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getOptional returns the stored value even when it is empty, so a brand
// mark can be switched off with an empty string.
func (s *SettingsService) getOptional(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.RenderBackend) domain.RenderBackend {
	val := s.configStore.GetString(keyReportBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.RenderBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
