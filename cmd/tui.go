package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cspend/internal/model"
	"github.com/theirongolddev/cspend/internal/store"
	"github.com/theirongolddev/cspend/internal/tui"
	"github.com/theirongolddev/cspend/internal/tui/theme"
)

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(themeName(cfg))

	log, closer, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{Budget: budgetInput(cfg), Logger: log})
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	a, ok := final.(tui.App)
	if !ok || !a.Started() {
		return nil
	}

	// Re-read so an export path set from the settings overlay applies now.
	path := exportPath(loadConfig())
	if path == "" {
		return nil
	}
	if err := archiveReport(path, a.Report(), log); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Session archived to %s\n", path)
	}
	return nil
}

func archiveReport(path string, r model.Report, log zerolog.Logger) error {
	archive, err := store.Open(path, log)
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := archive.Save(r); err != nil {
		return fmt.Errorf("archiving session: %w", err)
	}
	return nil
}
