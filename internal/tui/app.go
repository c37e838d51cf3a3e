// Package tui provides the interactive Bubble Tea expense tracker.
package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/cspend/internal/ledger"
	"github.com/theirongolddev/cspend/internal/model"
	"github.com/theirongolddev/cspend/internal/render"
	"github.com/theirongolddev/cspend/internal/tracker"
)

// Options configures a new App.
type Options struct {
	// Budget is raw budget input used instead of the prompt. Invalid input falls
	// back to the prompt.
	Budget string
	Logger zerolog.Logger
	// IDs overrides the expense id source; nil means UUIDv7.
	IDs ledger.IDSource
}

type phase int

const (
	phasePrompt phase = iota
	phaseLedger
)

type focusArea int

const (
	focusName focusArea = iota
	focusAmount
	focusList
	focusCount // sentinel
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
	minContentHeight = 5
)

// App is the root Bubble Tea model. It owns exactly one session at a time; a
// restart replaces the whole session.
type App struct {
	opts Options

	phase phase
	gen   int // session generation, bumped on restart

	// Session
	surface *render.Surface
	sched   *tickScheduler
	tracker *tracker.Tracker

	// Budget prompt (huh form)
	promptForm  *huh.Form
	promptValue *string

	// Expense form + list
	nameIn   textinput.Model
	amountIn textinput.Model
	focus    focusArea
	cursor   int

	// UI state
	width    int
	height   int
	showHelp bool
	settings settingsState
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	a := App{opts: opts}
	a.newSession()

	if opts.Budget != "" {
		if err := a.tracker.Start(opts.Budget); err == nil {
			a.enterLedger()
			return a
		}
		a.opts.Logger.Warn().Str("budget", opts.Budget).Msg("preset budget rejected, prompting")
		a.newSession()
	}
	return a
}

// newSession discards all session state and shows a fresh prompt.
func (a *App) newSession() {
	a.gen++
	a.surface = render.NewSurface()
	a.sched = newTickScheduler(a.gen)

	trOpts := []tracker.Option{tracker.WithLogger(a.opts.Logger)}
	if a.opts.IDs != nil {
		trOpts = append(trOpts, tracker.WithIDSource(a.opts.IDs))
	}
	a.tracker = tracker.New(render.NewRenderer(a.surface, a.sched), trOpts...)

	a.phase = phasePrompt
	a.promptValue = new(string)
	a.promptForm = newPromptForm(a.promptValue)
	if a.width > 0 {
		a.promptForm = a.promptForm.WithWidth(a.promptWidth())
	}

	a.nameIn = newNameInput()
	a.amountIn = newAmountInput()
	a.focus = focusName
	a.cursor = 0
	a.showHelp = false
	a.settings = settingsState{}
}

func (a *App) enterLedger() {
	a.phase = phaseLedger
	a.promptForm = nil
	a.setFocus(focusName)
}

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Coffee"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = ""
	return ti
}

func newAmountInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 20
	ti.Width = 12
	ti.Prompt = ""
	return ti
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.phase == phasePrompt {
		return a.promptForm.Init()
	}
	return textinput.Blink
}

// Started reports whether a budget was set in this session.
func (a App) Started() bool {
	return a.tracker.Started()
}

// Report snapshots the current session for export.
func (a App) Report() model.Report {
	return a.tracker.Report()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeInputs()
		if a.promptForm != nil {
			a.promptForm = a.promptForm.WithWidth(a.promptWidth())
		}
		return a, nil

	case timerFiredMsg:
		a.sched.fire(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.phase == phaseLedger {
			return a.updateLedgerKeys(msg)
		}
	}

	if a.phase == phasePrompt {
		return a.updatePrompt(msg)
	}

	// Cursor blinks and other input housekeeping.
	return a.updateFocusedInput(msg)
}

func (a App) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.promptForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.promptForm = f
	}

	switch a.promptForm.State {
	case huh.StateCompleted:
		return a.submitBudget(*a.promptValue)
	case huh.StateAborted:
		return a, tea.Quit
	}
	return a, cmd
}

// submitBudget starts the ledger, or restarts the whole session on bad input.
func (a App) submitBudget(input string) (App, tea.Cmd) {
	if err := a.tracker.Start(input); err != nil {
		a.newSession()
		return a, a.promptForm.Init()
	}
	a.enterLedger()
	return a, textinput.Blink
}

func (a App) updateLedgerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if a.settings.open {
		return a.updateSettingsKeys(msg)
	}

	switch key {
	case "tab":
		a.setFocus((a.focus + 1) % focusCount)
		return a, textinput.Blink
	case "shift+tab":
		a.setFocus((a.focus + focusCount - 1) % focusCount)
		return a, textinput.Blink
	}

	if a.focus == focusList {
		return a.updateListKeys(key)
	}

	switch key {
	case "enter":
		return a.submitExpense()
	case "esc":
		a.setFocus(focusList)
		return a, nil
	}
	return a.updateFocusedInput(msg)
}

func (a App) updateListKeys(key string) (tea.Model, tea.Cmd) {
	rows := a.surface.Rows()

	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
	case "s":
		a.settings = settingsState{open: true}
	case "j", "down":
		if a.cursor < len(rows)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = max(len(rows)-1, 0)
	case "d", "x", "delete", "backspace":
		if a.cursor < len(rows) {
			a.tracker.Delete(rows[a.cursor].ID)
			a.clampCursor()
		}
		return a, a.sched.drain()
	case "a", "n", "enter":
		a.setFocus(focusName)
		return a, textinput.Blink
	}
	return a, nil
}

// submitExpense hands the form to the tracker and clears it on success.
func (a App) submitExpense() (tea.Model, tea.Cmd) {
	err := a.tracker.Submit(a.nameIn.Value(), a.amountIn.Value())
	switch {
	case err == nil:
		a.nameIn.Reset()
		a.amountIn.Reset()
		a.setFocus(focusName)
		a.cursor = len(a.surface.Rows()) - 1
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrExceedsRemaining):
		a.setFocus(focusAmount)
	}
	return a, a.sched.drain()
}

func (a App) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.focus {
	case focusName:
		a.nameIn, cmd = a.nameIn.Update(msg)
	case focusAmount:
		a.amountIn, cmd = a.amountIn.Update(msg)
	}
	return a, cmd
}

func (a *App) setFocus(f focusArea) {
	a.focus = f
	a.nameIn.Blur()
	a.amountIn.Blur()
	switch f {
	case focusName:
		a.nameIn.Focus()
	case focusAmount:
		a.amountIn.Focus()
	case focusList:
		a.clampCursor()
	}
}

func (a *App) clampCursor() {
	n := len(a.surface.Rows())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) resizeInputs() {
	inner := a.contentWidth() - 4 - 12 // card chrome + label column
	a.nameIn.Width = max(min(inner-2, 48), 10)
	a.amountIn.Width = max(min(inner-2, 16), 8)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) promptWidth() int {
	return min(max(a.width-10, 20), 50)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.phase == phasePrompt {
		return a.viewPrompt()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	if a.settings.open {
		return a.viewSettings()
	}
	return a.viewLedger()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := "\n  Terminal too narrow\n\n  cspend needs at least " +
		strconv.Itoa(minTerminalWidth) + " columns.\n  Current width: " + strconv.Itoa(a.width) + "\n"
	return padHeight(truncateHeight(msg, h), h)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
