package render

import (
	"sort"
	"time"
)

// Scheduler runs fn once after d. Implementations must call fn on the same
// goroutine that drives the Renderer.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// ManualScheduler holds callbacks until Advance moves its clock past their deadline.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []pendingCall
}

type pendingCall struct {
	at  time.Duration
	seq int
	fn  func()
}

// After implements Scheduler.
func (m *ManualScheduler) After(d time.Duration, fn func()) {
	m.seq++
	m.pending = append(m.pending, pendingCall{at: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves the clock forward and fires every due callback in deadline order.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.now += d

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})

	n := 0
	var due []func()
	for _, p := range m.pending {
		if p.at <= m.now {
			due = append(due, p.fn)
		} else {
			m.pending[n] = p
			n++
		}
	}
	m.pending = m.pending[:n]

	for _, fn := range due {
		fn()
	}
}

// Pending returns the number of callbacks not yet fired.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}
