// Package tracker wires user actions to the ledger and renderer.
package tracker

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/cspend/internal/ledger"
	"github.com/theirongolddev/cspend/internal/model"
	"github.com/theirongolddev/cspend/internal/render"
)

// Alert messages shown to the user.
const (
	MsgMissingField     = "Both fields are required"
	MsgInvalidAmount    = "Invalid amount"
	MsgExceedsRemaining = "Amount exceeds the budget"
	MsgExpenseAdded     = "Expense added"
)

var (
	// ErrNotStarted is returned when an action arrives before a budget exists.
	ErrNotStarted = errors.New("no active budget")
	// ErrSubmissionLocked is returned once the budget is exhausted.
	ErrSubmissionLocked = errors.New("submission disabled: budget exhausted")
)

// Tracker owns the active budget for one session and applies the submit and
// delete policies.
type Tracker struct {
	renderer *render.Renderer
	ids      ledger.IDSource
	now      func() time.Time
	log      zerolog.Logger

	budget    *ledger.Budget
	sessionID string
	startedAt time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithIDSource overrides the default UUIDv7 expense ids.
func WithIDSource(ids ledger.IDSource) Option {
	return func(t *Tracker) { t.ids = ids }
}

// WithClock overrides time.Now for expense timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// New returns a Tracker with no budget yet.
func New(r *render.Renderer, opts ...Option) *Tracker {
	t := &Tracker{
		renderer: r,
		ids:      ledger.UUIDSource{},
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start creates the session budget from raw user input. On ErrInvalidBudget the
// caller is expected to restart the session.
func (t *Tracker) Start(input string) error {
	total, err := ledger.ParseBudget(input)
	if err != nil {
		t.log.Debug().Str("input", input).Msg("rejected budget input")
		return err
	}
	b, err := ledger.New(total)
	if err != nil {
		return err
	}

	t.budget = b
	t.sessionID = uuid.NewString()
	t.startedAt = t.now()
	t.renderer.ShowTotals(b.Totals())

	t.log.Info().Str("session", t.sessionID).Float64("total", total).Msg("budget created")
	return nil
}

// Started reports whether a budget exists.
func (t *Tracker) Started() bool { return t.budget != nil }

// Submit validates and records a new expense. A validation failure shows an error
// alert and leaves the ledger unchanged; the returned error tells the caller whether
// to clear the form.
func (t *Tracker) Submit(name, amount string) error {
	if t.budget == nil {
		return ErrNotStarted
	}
	if t.renderer.Target().SubmitDisabled() {
		return ErrSubmissionLocked
	}

	cleanName, value, err := ledger.ValidateExpense(name, amount, t.budget.Remaining())
	if err != nil {
		t.renderer.ShowAlert(alertMessage(err), model.AlertError)
		t.log.Debug().Err(err).Str("name", name).Str("amount", amount).Msg("expense rejected")
		return err
	}

	e := model.Expense{
		ID:        t.ids.NewID(),
		Name:      cleanName,
		Amount:    value,
		CreatedAt: t.now(),
	}
	t.budget.AddExpense(e)
	t.renderer.ShowAlert(MsgExpenseAdded, model.AlertSuccess)
	t.refresh()

	t.log.Info().Str("id", e.ID).Str("name", e.Name).Float64("amount", e.Amount).
		Float64("remaining", t.budget.Remaining()).Msg("expense added")
	return nil
}

// Delete removes the expense with id and re-renders. Unknown ids change nothing in
// the ledger but the view is still refreshed.
func (t *Tracker) Delete(id string) {
	if t.budget == nil {
		return
	}
	removed := t.budget.RemoveExpense(id)
	t.refresh()

	t.log.Info().Str("id", id).Bool("removed", removed).
		Float64("remaining", t.budget.Remaining()).Msg("expense deleted")
}

func (t *Tracker) refresh() {
	t.renderer.RenderExpenseList(t.budget.Expenses())
	t.renderer.UpdateRemaining(t.budget.Remaining())
	t.renderer.CheckBudgetStatus(t.budget.Totals())
}

// Totals returns the current figures, or zero values before Start.
func (t *Tracker) Totals() model.Totals {
	if t.budget == nil {
		return model.Totals{}
	}
	return t.budget.Totals()
}

// Expenses returns the current expenses in insertion order.
func (t *Tracker) Expenses() []model.Expense {
	if t.budget == nil {
		return nil
	}
	return t.budget.Expenses()
}

// Report snapshots the session for export.
func (t *Tracker) Report() model.Report {
	totals := t.Totals()
	return model.Report{
		SessionID: t.sessionID,
		StartedAt: t.startedAt,
		EndedAt:   t.now(),
		Totals:    totals,
		Tier:      model.ClassifyTier(totals).String(),
		Locked:    t.renderer.Target().SubmitDisabled(),
		Expenses:  t.Expenses(),
	}
}

func alertMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrMissingField):
		return MsgMissingField
	case errors.Is(err, ledger.ErrExceedsRemaining):
		return MsgExceedsRemaining
	default:
		return MsgInvalidAmount
	}
}
