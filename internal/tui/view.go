package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cspend/internal/cli"
	"github.com/theirongolddev/cspend/internal/tui/components"
	"github.com/theirongolddev/cspend/internal/tui/theme"
)

func (a App) viewLedger() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	header := lipgloss.NewStyle().Background(t.Surface).Width(w).
		Render(logoStyle.Render(" ◈ cspend") + subtitleStyle.Render(" · Expense Tracker"))

	// 2. Status bar
	hints := "[tab]focus  [enter]add  [esc]list  [ctrl+c]quit"
	if a.focus == focusList {
		hints = "[j/k]move  [d]elete  [a]dd  [s]ettings  [?]help  [q]uit"
	}
	right := ""
	if a.surface.SubmitDisabled() {
		right = "budget exhausted · submission locked"
	}
	statusBar := components.RenderStatusBar(w, hints, right)

	// 3. Content
	var b strings.Builder
	b.WriteString(a.renderSummary(cw))
	b.WriteString("\n")
	if alerts := a.surface.Alerts(); len(alerts) > 0 {
		b.WriteString(components.AlertStack(alerts, cw))
		b.WriteString("\n")
	}
	b.WriteString(a.renderForm(cw))
	b.WriteString("\n")
	b.WriteString(a.renderList(cw))

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)
	content := padHeight(truncateHeight(b.String(), contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderSummary(cw int) string {
	t := theme.Active
	totals := a.surface.Totals()
	tier := a.surface.Tier()
	rows := a.surface.Rows()

	metrics := []components.Metric{
		{Label: "Budget", Value: cli.FormatAmount(totals.Total)},
		{Label: "Remaining", Value: cli.FormatAmount(totals.Remaining), Color: t.Tier(tier)},
		{Label: "Spent", Value: cli.FormatAmount(totals.Spent())},
		{Label: "Expenses", Value: cli.FormatNumber(int64(len(rows)))},
	}

	amounts := make([]float64, len(rows))
	for i, e := range rows {
		amounts[i] = e.Amount
	}

	inner := components.CardInnerWidth(cw)
	body := components.RemainingBar(totals, tier, inner-10)
	if spark := components.Sparkline(amounts, t.Accent, inner); spark != "" {
		body += "\n" + spark
	}

	return components.MetricCardRow(metrics, cw) + "\n" +
		components.ContentCard("", body, cw, false)
}

func (a App) renderForm(cw int) string {
	t := theme.Active
	locked := a.surface.SubmitDisabled()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	activeLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	label := func(text string, f focusArea) string {
		if a.focus == f {
			return activeLabelStyle.Render(fmt.Sprintf("%-10s", text))
		}
		return labelStyle.Render(fmt.Sprintf("%-10s", text))
	}

	button := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 2).
		Render("Add expense")
	if locked {
		button = lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.SurfaceBright).
			Padding(0, 2).
			Render("Add expense (disabled)")
	}

	var body strings.Builder
	body.WriteString(label("Expense", focusName) + spaceStyle.Render(" ") + a.nameIn.View() + "\n")
	body.WriteString(label("Amount", focusAmount) + spaceStyle.Render(" ") + a.amountIn.View() + "\n")
	body.WriteString(button)

	return components.ContentCard("Add an expense", body.String(), cw, a.focus != focusList)
}

func (a App) renderList(cw int) string {
	t := theme.Active
	rows := a.surface.Rows()
	listFocused := a.focus == focusList

	if len(rows) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		return components.ContentCard("Expenses", dim.Render("No expenses yet"), cw, listFocused)
	}

	inner := components.CardInnerWidth(cw)
	amountW := 0
	for _, e := range rows {
		amountW = max(amountW, lipgloss.Width(cli.FormatAmount(e.Amount)))
	}
	const deleteCtl = "[x]"
	nameW := max(inner-2-amountW-2-len(deleteCtl)-1, 4)

	var body strings.Builder
	for i, e := range rows {
		selected := listFocused && i == a.cursor

		bg := t.Surface
		marker := "  "
		if selected {
			bg = t.SurfaceBright
			marker = "▸ "
		}
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
		amountStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(bg).Bold(true)
		deleteStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(bg)
		if selected {
			deleteStyle = deleteStyle.Foreground(t.Red).Bold(true)
		}
		markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(bg)

		line := markerStyle.Render(marker) +
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(e.Name, nameW))) +
			nameStyle.Render("  ") +
			amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatAmount(e.Amount))) +
			nameStyle.Render(" ") +
			deleteStyle.Render(deleteCtl)
		body.WriteString(line)
		if i < len(rows)-1 {
			body.WriteString("\n")
		}
	}

	title := "Expenses (" + cli.Pluralize(len(rows), "item", "items") + ")"
	return components.ContentCard(title, body.String(), cw, listFocused)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Form", []struct{ key, desc string }{
			{"tab S-tab", "Next / previous field"},
			{"enter", "Add expense"},
			{"esc", "Go to the expense list"},
		}},
		{"List", []struct{ key, desc string }{
			{"j k", "Move selection"},
			{"g G", "First / last"},
			{"d x del", "Delete selected expense"},
			{"a", "Back to the form"},
			{"s", "Settings"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.name))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}
