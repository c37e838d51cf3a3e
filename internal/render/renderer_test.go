package render

import (
	"testing"
	"time"

	"github.com/theirongolddev/cspend/internal/model"
)

func newTestRenderer() (*Renderer, *Surface, *ManualScheduler) {
	s := NewSurface()
	sched := &ManualScheduler{}
	return NewRenderer(s, sched), s, sched
}

func TestShowAlertExpiresAfterThreeSeconds(t *testing.T) {
	r, s, sched := newTestRenderer()

	r.ShowAlert("Expense added", model.AlertSuccess)
	if got := len(s.Alerts()); got != 1 {
		t.Fatalf("alerts = %d, want 1", got)
	}

	sched.Advance(AlertDuration - time.Millisecond)
	if got := len(s.Alerts()); got != 1 {
		t.Fatalf("alert removed early: %d visible", got)
	}

	sched.Advance(time.Millisecond)
	if got := len(s.Alerts()); got != 0 {
		t.Fatalf("alerts after expiry = %d, want 0", got)
	}
}

func TestAlertsStackWithIndependentTimers(t *testing.T) {
	r, s, sched := newTestRenderer()

	r.ShowAlert("first", model.AlertError)
	sched.Advance(time.Second)
	r.ShowAlert("second", model.AlertSuccess)

	alerts := s.Alerts()
	if len(alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(alerts))
	}
	if alerts[0].Message != "first" || alerts[1].Message != "second" {
		t.Fatalf("alert order = [%q, %q]", alerts[0].Message, alerts[1].Message)
	}
	if alerts[0].ID == alerts[1].ID {
		t.Fatal("alerts share an id")
	}

	sched.Advance(2 * time.Second)
	alerts = s.Alerts()
	if len(alerts) != 1 || alerts[0].Message != "second" {
		t.Fatalf("after 3s want only second alert, got %+v", alerts)
	}

	sched.Advance(time.Second)
	if len(s.Alerts()) != 0 || sched.Pending() != 0 {
		t.Fatalf("want no alerts and no timers, got %d alerts, %d timers", len(s.Alerts()), sched.Pending())
	}
}

func TestRenderExpenseListReplacesRows(t *testing.T) {
	r, s, _ := newTestRenderer()

	r.RenderExpenseList([]model.Expense{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	r.RenderExpenseList([]model.Expense{{ID: "3"}, {ID: "1"}})

	rows := s.Rows()
	if len(rows) != 2 || rows[0].ID != "3" || rows[1].ID != "1" {
		t.Fatalf("rows = %+v, want [3 1]", rows)
	}

	r.RenderExpenseList(nil)
	if len(s.Rows()) != 0 {
		t.Fatalf("rows = %d after empty render", len(s.Rows()))
	}
}

func TestShowTotalsAndUpdateRemaining(t *testing.T) {
	r, s, _ := newTestRenderer()

	r.ShowTotals(model.Totals{Total: 100, Remaining: 100})
	r.UpdateRemaining(70)

	got := s.Totals()
	if got.Total != 100 || got.Remaining != 70 {
		t.Fatalf("totals = %+v, want {100 70}", got)
	}
}

func TestCheckBudgetStatusTiers(t *testing.T) {
	tests := []struct {
		remaining float64
		want      model.Tier
	}{
		{100, model.TierSuccess},
		{50, model.TierSuccess},
		{49.99, model.TierWarning},
		{25, model.TierWarning},
		{20, model.TierDanger},
		{0, model.TierDanger},
	}
	for _, tt := range tests {
		r, s, _ := newTestRenderer()
		r.CheckBudgetStatus(model.Totals{Total: 100, Remaining: tt.remaining})
		if s.Tier() != tt.want {
			t.Errorf("remaining=%v tier=%s, want %s", tt.remaining, s.Tier(), tt.want)
		}
	}
}

func TestCheckBudgetStatusLocksWhenExhausted(t *testing.T) {
	r, s, _ := newTestRenderer()

	r.CheckBudgetStatus(model.Totals{Total: 100, Remaining: 1})
	if s.SubmitDisabled() {
		t.Fatal("submission disabled with budget left")
	}

	r.CheckBudgetStatus(model.Totals{Total: 100, Remaining: 0})
	if !s.SubmitDisabled() {
		t.Fatal("submission still enabled at zero remaining")
	}
	alerts := s.Alerts()
	if len(alerts) != 1 || alerts[0].Kind != model.AlertError || alerts[0].Message != MsgBudgetExhausted {
		t.Fatalf("alerts = %+v, want one exhausted error", alerts)
	}

	// No way back once locked.
	r.CheckBudgetStatus(model.Totals{Total: 100, Remaining: 80})
	if !s.SubmitDisabled() {
		t.Fatal("submission re-enabled")
	}
}
