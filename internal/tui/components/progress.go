package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cspend/internal/model"
	"github.com/theirongolddev/cspend/internal/tui/theme"
)

// RemainingBar renders the share of budget left as a tier-coloured bar followed by
// the percentage. width is the bar width excluding the label.
func RemainingBar(totals model.Totals, tier model.Tier, width int) string {
	t := theme.Active
	if width < 4 {
		width = 4
	}

	pct := totals.RemainingFraction()
	color := t.Tier(tier)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%3.0f%% left", pct*100))
}
