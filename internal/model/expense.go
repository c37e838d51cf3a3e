// Package model holds the plain data types shared by the ledger, renderer, and UI.
package model

import "time"

// Expense is a single named debit against the budget.
type Expense struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Amount    float64   `json:"amount" yaml:"amount"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Totals is a read-only snapshot of the budget figures.
type Totals struct {
	Total     float64 `json:"total" yaml:"total"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
}

// Spent returns the amount consumed so far.
func (t Totals) Spent() float64 {
	return t.Total - t.Remaining
}

// RemainingFraction returns remaining/total clamped to [0, 1].
func (t Totals) RemainingFraction() float64 {
	if t.Total <= 0 {
		return 0
	}
	f := t.Remaining / t.Total
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Exhausted reports whether nothing is left to spend.
func (t Totals) Exhausted() bool {
	return t.Remaining <= 0
}
