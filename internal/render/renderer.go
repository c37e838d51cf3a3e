package render

import (
	"time"

	"github.com/theirongolddev/cspend/internal/model"
)

// AlertDuration is how long a banner stays visible.
const AlertDuration = 3 * time.Second

// MsgBudgetExhausted is shown once nothing remains.
const MsgBudgetExhausted = "The budget is exhausted"

// Renderer pushes ledger state into a Target.
type Renderer struct {
	target    Target
	scheduler Scheduler
	nextAlert int
}

// NewRenderer returns a Renderer writing to target and expiring alerts through scheduler.
func NewRenderer(target Target, scheduler Scheduler) *Renderer {
	return &Renderer{target: target, scheduler: scheduler}
}

// Target returns the surface this renderer writes to.
func (r *Renderer) Target() Target { return r.target }

// ShowTotals writes both the total and remaining figures.
func (r *Renderer) ShowTotals(t model.Totals) {
	r.target.SetTotals(t)
}

// ShowAlert displays a banner that removes itself after AlertDuration. Each banner has
// its own timer, so several can be visible at once.
func (r *Renderer) ShowAlert(message string, kind model.AlertKind) {
	r.nextAlert++
	id := r.nextAlert
	r.target.PushAlert(model.Alert{ID: id, Message: message, Kind: kind})
	r.scheduler.After(AlertDuration, func() {
		r.target.DropAlert(id)
	})
}

// RenderExpenseList replaces the rendered rows with expenses, in order.
func (r *Renderer) RenderExpenseList(expenses []model.Expense) {
	r.target.ClearExpenses()
	for _, e := range expenses {
		r.target.AppendExpense(e)
	}
}

// UpdateRemaining writes just the remaining figure.
func (r *Renderer) UpdateRemaining(remaining float64) {
	r.target.SetRemaining(remaining)
}

// CheckBudgetStatus applies the warning tier and locks submission once the budget
// is used up. The lock is never lifted.
func (r *Renderer) CheckBudgetStatus(t model.Totals) {
	r.target.SetTier(model.ClassifyTier(t))

	if t.Exhausted() {
		r.ShowAlert(MsgBudgetExhausted, model.AlertError)
		r.target.DisableSubmit()
	}
}
