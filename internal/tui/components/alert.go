package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cspend/internal/model"
	"github.com/theirongolddev/cspend/internal/tui/theme"
)

// AlertBanner renders one alert as a full-width, centred banner.
func AlertBanner(a model.Alert, width int) string {
	t := theme.Active
	color := t.Alert(a.Kind)

	icon := "✓"
	if a.Kind == model.AlertError {
		icon = "✗"
	}

	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(color).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(icon + " " + a.Message)
}

// AlertStack renders alerts oldest first, one banner per line.
func AlertStack(alerts []model.Alert, width int) string {
	if len(alerts) == 0 {
		return ""
	}
	lines := make([]string, len(alerts))
	for i, a := range alerts {
		lines[i] = AlertBanner(a, width)
	}
	return strings.Join(lines, "\n")
}
