package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cspend/internal/config"
	"github.com/theirongolddev/cspend/internal/ledger"
	"github.com/theirongolddev/cspend/internal/tui/components"
	"github.com/theirongolddev/cspend/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldBudget
	settingsFieldExport
	settingsFieldCount // sentinel
)

// settingsState tracks the settings overlay. Changes apply to future sessions;
// the running budget is never touched.
type settingsState struct {
	open    bool
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = ""

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldBudget:
		ti.Placeholder = "500 (leave empty to always ask)"
		if cfg.General.DefaultBudget != nil {
			ti.SetValue(strconv.FormatFloat(*cfg.General.DefaultBudget, 'f', -1, 64))
		}
	case settingsFieldExport:
		ti.Placeholder = config.DefaultExportPath()
		ti.SetValue(cfg.Export.Path)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.settings.editing {
		switch key {
		case "enter":
			a.settings.saveErr = a.settingsSave()
			a.settings.editing = false
			a.settings.saved = a.settings.saveErr == nil
			return a, nil
		case "esc":
			a.settings.editing = false
			return a, nil
		}
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	switch key {
	case "esc", "s", "q":
		a.settings.open = false
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter":
		return a.settingsStartEdit()
	}
	return a, nil
}

func (a *App) settingsSave() error {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !slices.Contains(theme.Names(), val) {
			return fmt.Errorf("unknown theme %q", val)
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldBudget:
		if val == "" {
			cfg.General.DefaultBudget = nil
			break
		}
		v, err := ledger.ParseBudget(val)
		if err != nil {
			return err
		}
		cfg.General.DefaultBudget = &v
	case settingsFieldExport:
		cfg.Export.Path = val
	}

	return config.Save(cfg)
}

func (a App) viewSettings() string {
	t := theme.Active
	cw := min(a.contentWidth(), 80)
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	budget := "(ask)"
	if cfg.General.DefaultBudget != nil {
		budget = "$" + strconv.FormatFloat(*cfg.General.DefaultBudget, 'f', -1, 64)
	}
	export := cfg.Export.Path
	if export == "" {
		export = "(disabled)"
	}

	fields := []struct{ label, value string }{
		{"Theme", cfg.Appearance.Theme},
		{"Default Budget", budget},
		{"Export Archive", export},
	}

	var body strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(accentStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			body.WriteString(a.settings.input.View())
			body.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label+":"))
			value := selectedStyle.Render(truncStr(f.value, cw-24))
			body.WriteString(marker + label + value)
			if pad := components.CardInnerWidth(cw) - lipgloss.Width(marker+label+value); pad > 0 {
				body.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			body.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			body.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")))
			body.WriteString(valueStyle.Render(truncStr(f.value, cw-24)))
		}
		body.WriteString("\n")
	}

	switch {
	case a.settings.saveErr != nil:
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).
			Render("Save failed: " + a.settings.saveErr.Error()))
	case a.settings.saved:
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Render("Saved!"))
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("[j/k] navigate  [enter] edit  [esc] close"))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(truncStr(config.Path(), cw-18)))

	card := components.ContentCard("Settings", body.String(), cw, true)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
