package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg is delivered when a scheduled callback is due. gen ties it to the
// session that scheduled it so timers from a restarted session are ignored.
type timerFiredMsg struct {
	gen int
	id  int
}

// tickScheduler implements render.Scheduler on top of tea.Tick. Callbacks run inside
// App.Update, never on the timer goroutine.
type tickScheduler struct {
	gen     int
	next    int
	pending map[int]func()
	queued  []tea.Cmd
}

func newTickScheduler(gen int) *tickScheduler {
	return &tickScheduler{gen: gen, pending: make(map[int]func())}
}

// After implements render.Scheduler.
func (s *tickScheduler) After(d time.Duration, fn func()) {
	s.next++
	id, gen := s.next, s.gen
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{gen: gen, id: id}
	}))
}

// drain returns the tick commands scheduled since the last drain.
func (s *tickScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *tickScheduler) fire(msg timerFiredMsg) {
	if msg.gen != s.gen {
		return
	}
	fn, ok := s.pending[msg.id]
	if !ok {
		return
	}
	delete(s.pending, msg.id)
	fn()
}
