package model

import "time"

// Report is a snapshot of one finished session, used by the export archive and the
// report command.
type Report struct {
	SessionID string    `json:"session_id" yaml:"session_id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	EndedAt   time.Time `json:"ended_at" yaml:"ended_at"`
	Totals    Totals    `json:"totals" yaml:"totals"`
	Tier      string    `json:"tier" yaml:"tier"`
	Locked    bool      `json:"locked" yaml:"locked"`
	Expenses  []Expense `json:"expenses" yaml:"expenses"`
}
