// Package store provides a SQLite archive of finished sessions. It is a write-only
// report sink: nothing here is used to restore a ledger.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/cspend/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive stores session reports.
type Archive struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// Summary is one archived session without its expenses.
type Summary struct {
	SessionID    string  `db:"session_id"`
	StartedAt    string  `db:"started_at"`
	EndedAt      string  `db:"ended_at"`
	Total        float64 `db:"total"`
	Remaining    float64 `db:"remaining"`
	Tier         string  `db:"tier"`
	Locked       bool    `db:"locked"`
	ExpenseCount int     `db:"expense_count"`
}

// Ended parses EndedAt, returning the zero time when malformed.
func (s Summary) Ended() time.Time {
	t, _ := time.Parse(time.RFC3339, s.EndedAt)
	return t
}

type expenseRow struct {
	ExpenseID string  `db:"expense_id"`
	Name      string  `db:"name"`
	Amount    float64 `db:"amount"`
	CreatedAt string  `db:"created_at"`
}

// Open opens or creates the archive at dbPath.
func Open(dbPath string, log zerolog.Logger) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db, log: log}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Save stores a session report, replacing any earlier copy with the same id.
func (a *Archive) Save(r model.Report) error {
	if r.SessionID == "" {
		return fmt.Errorf("saving report: empty session id")
	}

	tx, err := a.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	locked := 0
	if r.Locked {
		locked = 1
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO sessions
		(session_id, started_at, ended_at, total, remaining, tier, locked, expense_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, formatTime(r.StartedAt), formatTime(r.EndedAt),
		r.Totals.Total, r.Totals.Remaining, r.Tier, locked, len(r.Expenses),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM expenses WHERE session_id = ?", r.SessionID); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}

	for i, e := range r.Expenses {
		_, err = tx.Exec(`INSERT INTO expenses
			(session_id, position, expense_id, name, amount, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.SessionID, i, e.ID, e.Name, e.Amount, formatTime(e.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("saving expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing report: %w", err)
	}

	a.log.Info().Str("session", r.SessionID).Int("expenses", len(r.Expenses)).Msg("session archived")
	return nil
}

// List returns archived sessions, most recent first. limit <= 0 means no limit.
func (a *Archive) List(limit int) ([]Summary, error) {
	query := `SELECT session_id, started_at, ended_at, total, remaining, tier, locked, expense_count
		FROM sessions ORDER BY ended_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var out []Summary
	if err := a.db.Select(&out, query, args...); err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return out, nil
}

// Expenses returns the archived expenses of one session in their original order.
func (a *Archive) Expenses(sessionID string) ([]model.Expense, error) {
	var rows []expenseRow
	err := a.db.Select(&rows, `SELECT expense_id, name, amount, created_at
		FROM expenses WHERE session_id = ? ORDER BY position`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	out := make([]model.Expense, 0, len(rows))
	for _, r := range rows {
		created, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
		out = append(out, model.Expense{ID: r.ExpenseID, Name: r.Name, Amount: r.Amount, CreatedAt: created})
	}
	return out, nil
}

// Count returns the number of archived sessions.
func (a *Archive) Count() (int, error) {
	var n int
	err := a.db.Get(&n, "SELECT COUNT(*) FROM sessions")
	return n, err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
