package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change report, branding, catalog and server settings.

Settings are stored in ~/.omdiag/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting and save it.

Keys:
  report.title           Report title
  report.backend         pdf, html, markdown or chromepdf
  report.glossary        Include level definitions (true/false)
  report.filename        Report file name without extension
  branding.product_name  Product named in "How <Product> Helps"
  branding.company_name  Company named in the closing block
  branding.footer        Footer and copyright line
  branding.product_mark  Product logo URL or path (empty disables)
  branding.company_mark  Company logo URL or path (empty disables)
  catalog.path           Content catalog override file (YAML)
  server.addr            HTTP listen address
  server.export_rate     Report exports per second
  server.export_burst    Report export burst size`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Report]")
	cmd.Printf("  Title: %s\n", settings.Report.Title)
	cmd.Printf("  Backend: %s\n", settings.Report.Backend.Description())
	cmd.Printf("  Glossary: %s\n", yesNo(settings.Report.Glossary))
	cmd.Printf("  Filename: %s\n", settings.Report.FilenameBase)
	cmd.Println()

	cmd.Println("[Branding]")
	cmd.Printf("  Product: %s\n", settings.Branding.ProductName)
	cmd.Printf("  Company: %s\n", settings.Branding.CompanyName)
	cmd.Printf("  Footer: %s\n", settings.Branding.Footer)
	cmd.Printf("  Product mark: %s\n", orNotSet(settings.Branding.ProductMark))
	cmd.Printf("  Company mark: %s\n", orNotSet(settings.Branding.CompanyMark))
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Path: %s\n", orDefault(settings.Catalog.Path, "(built-in)"))
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Printf("  Export rate: %.2f/s (burst %d)\n", settings.Server.ExportRate, settings.Server.ExportBurst)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := strings.ToLower(strings.TrimSpace(args[0]))
	if err := settingsService.Set(key, args[1]); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNotSet(s string) string {
	return orDefault(s, "(not set)")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
