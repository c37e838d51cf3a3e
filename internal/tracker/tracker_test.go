package tracker

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cspend/internal/ledger"
	"github.com/theirongolddev/cspend/internal/logging"
	"github.com/theirongolddev/cspend/internal/model"
	"github.com/theirongolddev/cspend/internal/render"
)

type fixture struct {
	tr      *Tracker
	surface *render.Surface
	sched   *render.ManualScheduler
}

func newFixture(t *testing.T, budget string) fixture {
	t.Helper()
	s := render.NewSurface()
	sched := &render.ManualScheduler{}
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := New(render.NewRenderer(s, sched),
		WithIDSource(&ledger.Counter{}),
		WithClock(func() time.Time { return clock }),
	)
	require.NoError(t, tr.Start(budget))
	return fixture{tr: tr, surface: s, sched: sched}
}

func lastAlert(t *testing.T, s *render.Surface) model.Alert {
	t.Helper()
	alerts := s.Alerts()
	require.NotEmpty(t, alerts)
	return alerts[len(alerts)-1]
}

func TestStartRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-10"} {
		s := render.NewSurface()
		tr := New(render.NewRenderer(s, &render.ManualScheduler{}))
		assert.ErrorIs(t, tr.Start(in), ledger.ErrInvalidBudget, "input %q", in)
		assert.False(t, tr.Started())
		assert.ErrorIs(t, tr.Submit("x", "1"), ErrNotStarted)
	}
}

func TestStartShowsTotals(t *testing.T) {
	f := newFixture(t, "100")
	assert.Equal(t, model.Totals{Total: 100, Remaining: 100}, f.surface.Totals())
	assert.Empty(t, f.surface.Alerts())
}

func TestCoffeeAndBook(t *testing.T) {
	f := newFixture(t, "100")

	require.NoError(t, f.tr.Submit("Coffee", "30"))
	assert.Equal(t, 70.0, f.surface.Totals().Remaining)
	assert.Equal(t, MsgExpenseAdded, lastAlert(t, f.surface).Message)

	require.NoError(t, f.tr.Submit("Book", "50"))
	assert.Equal(t, 20.0, f.surface.Totals().Remaining)
	assert.Equal(t, model.TierDanger, f.surface.Tier())

	rows := f.surface.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Coffee", rows[0].Name)
	assert.Equal(t, "Book", rows[1].Name)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
	assert.False(t, f.surface.SubmitDisabled())
}

func TestSubmitValidationLeavesLedgerUnchanged(t *testing.T) {
	tests := []struct {
		name, amount string
		wantErr      error
		wantMsg      string
	}{
		{"", "10", ledger.ErrMissingField, MsgMissingField},
		{"Lunch", "", ledger.ErrMissingField, MsgMissingField},
		{"Lunch", "ten", ledger.ErrInvalidAmount, MsgInvalidAmount},
		{"Lunch", "-4", ledger.ErrInvalidAmount, MsgInvalidAmount},
		{"Lunch", "81", ledger.ErrExceedsRemaining, MsgExceedsRemaining},
	}
	for _, tt := range tests {
		f := newFixture(t, "100")
		require.NoError(t, f.tr.Submit("Coffee", "20"))
		before := f.tr.Expenses()

		err := f.tr.Submit(tt.name, tt.amount)
		assert.ErrorIs(t, err, tt.wantErr)

		alert := lastAlert(t, f.surface)
		assert.Equal(t, tt.wantMsg, alert.Message)
		assert.Equal(t, model.AlertError, alert.Kind)
		assert.Equal(t, before, f.tr.Expenses())
		assert.Equal(t, 80.0, f.tr.Totals().Remaining)
	}
}

func TestExhaustingBudgetLocksSubmission(t *testing.T) {
	f := newFixture(t, "100")

	require.NoError(t, f.tr.Submit("Rent", "100"))
	assert.Equal(t, 0.0, f.surface.Totals().Remaining)
	assert.True(t, f.surface.SubmitDisabled())
	assert.Equal(t, render.MsgBudgetExhausted, lastAlert(t, f.surface).Message)

	alertsBefore := len(f.surface.Alerts())
	assert.ErrorIs(t, f.tr.Submit("Snack", "1"), ErrSubmissionLocked)
	assert.Len(t, f.surface.Alerts(), alertsBefore)
	assert.Len(t, f.tr.Expenses(), 1)

	// Deleting frees budget but the lock is terminal for the session.
	f.tr.Delete(f.tr.Expenses()[0].ID)
	assert.Equal(t, 100.0, f.surface.Totals().Remaining)
	assert.Equal(t, model.TierSuccess, f.surface.Tier())
	assert.ErrorIs(t, f.tr.Submit("Snack", "1"), ErrSubmissionLocked)
}

func TestDelete(t *testing.T) {
	f := newFixture(t, "100")
	require.NoError(t, f.tr.Submit("Coffee", "30"))
	require.NoError(t, f.tr.Submit("Book", "50"))

	coffee := f.tr.Expenses()[0]
	f.tr.Delete(coffee.ID)

	rows := f.surface.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Book", rows[0].Name)
	assert.Equal(t, 50.0, f.surface.Totals().Remaining)
	assert.Equal(t, model.TierSuccess, f.surface.Tier())

	f.tr.Delete("missing")
	assert.Len(t, f.surface.Rows(), 1)
	assert.Equal(t, 50.0, f.surface.Totals().Remaining)
}

func TestAlertsExpire(t *testing.T) {
	f := newFixture(t, "100")
	require.NoError(t, f.tr.Submit("Coffee", "30"))
	_ = f.tr.Submit("", "")
	assert.Len(t, f.surface.Alerts(), 2)

	f.sched.Advance(render.AlertDuration)
	assert.Empty(t, f.surface.Alerts())
	assert.Len(t, f.surface.Rows(), 1)
}

func TestRapidAddsGetDistinctIDs(t *testing.T) {
	s := render.NewSurface()
	tr := New(render.NewRenderer(s, &render.ManualScheduler{}))
	require.NoError(t, tr.Start("1000"))

	for i := 0; i < 50; i++ {
		require.NoError(t, tr.Submit("Gum", "1"))
	}

	seen := make(map[string]bool)
	for _, e := range tr.Expenses() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestReport(t *testing.T) {
	f := newFixture(t, "100")
	require.NoError(t, f.tr.Submit("Coffee", "30"))

	r := f.tr.Report()
	assert.NotEmpty(t, r.SessionID)
	assert.Equal(t, model.Totals{Total: 100, Remaining: 70}, r.Totals)
	assert.Equal(t, "success", r.Tier)
	assert.False(t, r.Locked)
	require.Len(t, r.Expenses, 1)
	assert.Equal(t, "1", r.Expenses[0].ID)
}

func TestLogsExpenseEvents(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug")
	require.NoError(t, err)

	tr := New(render.NewRenderer(render.NewSurface(), &render.ManualScheduler{}), WithLogger(logger))
	require.NoError(t, tr.Start("10"))
	require.NoError(t, tr.Submit("Tea", "2"))

	assert.Contains(t, buf.String(), "budget created")
	assert.Contains(t, buf.String(), "expense added")
}
