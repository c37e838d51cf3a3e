// Package render reflects ledger state onto a display surface.
//
// Renderer holds the presentation rules (tiers, alert lifetime, submission lock) and
// writes through a Target, so the same flow drives the terminal UI, the headless
// report command, and tests.
package render

import "github.com/theirongolddev/cspend/internal/model"

// Target is a display surface the Renderer writes to.
type Target interface {
	SetTotals(t model.Totals)
	SetRemaining(remaining float64)
	PushAlert(a model.Alert)
	DropAlert(id int)
	ClearExpenses()
	AppendExpense(e model.Expense)
	SetTier(t model.Tier)
	DisableSubmit()
	SubmitDisabled() bool
}

// Surface is an in-memory Target. It is the display state the TUI paints from.
type Surface struct {
	totals   model.Totals
	alerts   []model.Alert
	rows     []model.Expense
	tier     model.Tier
	disabled bool
}

// NewSurface returns an empty surface with submission enabled.
func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) SetTotals(t model.Totals)       { s.totals = t }
func (s *Surface) SetRemaining(remaining float64) { s.totals.Remaining = remaining }
func (s *Surface) PushAlert(a model.Alert)        { s.alerts = append(s.alerts, a) }
func (s *Surface) ClearExpenses()                 { s.rows = s.rows[:0] }
func (s *Surface) AppendExpense(e model.Expense)  { s.rows = append(s.rows, e) }
func (s *Surface) SetTier(t model.Tier)           { s.tier = t }
func (s *Surface) DisableSubmit()                 { s.disabled = true }
func (s *Surface) SubmitDisabled() bool           { return s.disabled }

func (s *Surface) DropAlert(id int) {
	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return
		}
	}
}

// Totals returns the figures currently displayed.
func (s *Surface) Totals() model.Totals { return s.totals }

// Tier returns the current warning tier.
func (s *Surface) Tier() model.Tier { return s.tier }

// Alerts returns the visible alerts, oldest first.
func (s *Surface) Alerts() []model.Alert {
	out := make([]model.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Rows returns the rendered expense rows in display order.
func (s *Surface) Rows() []model.Expense {
	out := make([]model.Expense, len(s.rows))
	copy(out, s.rows)
	return out
}
