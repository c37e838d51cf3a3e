package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cspend/internal/config"
	"github.com/theirongolddev/cspend/internal/ledger"
	"github.com/theirongolddev/cspend/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

type setupValues struct {
	theme  string
	budget string
	export bool
	path   string
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	vals := setupValues{
		theme:  cfg.Appearance.Theme,
		export: cfg.Export.Path != "",
		path:   cfg.Export.Path,
	}
	if cfg.General.DefaultBudget != nil {
		vals.budget = strconv.FormatFloat(*cfg.General.DefaultBudget, 'f', -1, 64)
	}
	if vals.path == "" {
		vals.path = config.DefaultExportPath()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
			huh.NewInput().
				Title("Default budget").
				Description("Used instead of the startup prompt. Leave empty to always ask.").
				Placeholder("500").
				Validate(validateOptionalBudget).
				Value(&vals.budget),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Archive finished sessions to SQLite?").
				Value(&vals.export),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Archive path").
				Value(&vals.path),
		).WithHideFunc(func() bool { return !vals.export }),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	applySetup(&cfg, vals)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `cspend setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateOptionalBudget(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := ledger.ParseBudget(s)
	return err
}

// applySetup copies wizard answers into cfg. Values are assumed validated.
func applySetup(cfg *config.Config, vals setupValues) {
	cfg.Appearance.Theme = vals.theme

	cfg.General.DefaultBudget = nil
	if v, err := ledger.ParseBudget(vals.budget); err == nil {
		cfg.General.DefaultBudget = &v
	}

	cfg.Export.Path = ""
	if vals.export {
		cfg.Export.Path = strings.TrimSpace(vals.path)
	}
}
