// Package ledger holds the budget, its expenses, and the derived remaining balance.
package ledger

import (
	"errors"
	"math"

	"github.com/theirongolddev/cspend/internal/model"
)

// ErrInvalidBudget is returned for an empty, non-numeric, or non-positive budget.
var ErrInvalidBudget = errors.New("invalid budget")

// Budget is the spending ceiling for one session and the expenses logged against it.
// The zero value is not usable; construct with New.
type Budget struct {
	total     float64
	remaining float64
	expenses  []model.Expense
}

// New returns a budget with nothing spent.
func New(total float64) (*Budget, error) {
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return nil, ErrInvalidBudget
	}
	return &Budget{total: total, remaining: total}, nil
}

// AddExpense appends e and recomputes the remaining balance. Whether e fits in the
// remaining balance is the caller's concern.
func (b *Budget) AddExpense(e model.Expense) {
	b.expenses = append(b.expenses, e)
	b.recompute()
}

// RemoveExpense drops every expense with the given id and reports whether any matched.
// An unknown id leaves the budget untouched.
func (b *Budget) RemoveExpense(id string) bool {
	n := 0
	for _, e := range b.expenses {
		if e.ID != id {
			b.expenses[n] = e
			n++
		}
	}
	removed := n != len(b.expenses)
	clear(b.expenses[n:])
	b.expenses = b.expenses[:n]
	b.recompute()
	return removed
}

// recompute derives remaining from scratch so it never drifts from the expense list.
func (b *Budget) recompute() {
	var spent float64
	for _, e := range b.expenses {
		spent += e.Amount
	}
	b.remaining = b.total - spent
}

// Total returns the budget ceiling.
func (b *Budget) Total() float64 { return b.total }

// Remaining returns total minus the sum of all expenses.
func (b *Budget) Remaining() float64 { return b.remaining }

// Spent returns the sum of all expenses.
func (b *Budget) Spent() float64 { return b.total - b.remaining }

// Len returns the number of expenses.
func (b *Budget) Len() int { return len(b.expenses) }

// Expenses returns a copy of the expenses in insertion order.
func (b *Budget) Expenses() []model.Expense {
	out := make([]model.Expense, len(b.expenses))
	copy(out, b.expenses)
	return out
}

// Totals returns a snapshot of the budget figures.
func (b *Budget) Totals() model.Totals {
	return model.Totals{Total: b.total, Remaining: b.remaining}
}
