package menu

import (
	"fmt"
	"time"

	"github.com/sweeney/lamp-timer/internal/button"
	"github.com/sweeney/lamp-timer/internal/clock"
	"github.com/sweeney/lamp-timer/internal/schedule"
)

// IdleTimeout is how long the menu stays open without an accepted input.
const IdleTimeout = 8 * time.Second

// Commit identifies which external value a transition wrote.
type Commit int

const (
	CommitNone Commit = iota
	// CommitSchedule means the off-time was committed and the schedule persisted.
	CommitSchedule
	// CommitClock means the edited time was written to the clock device.
	CommitClock
)

// Machine executes the transition table against the collaborators.
// Single writer: only the tick loop calls into it.
type Machine struct {
	clock clock.Device
	sched schedule.Scheduler

	state        State
	buf          Buffer
	lastActivity time.Time
}

// New creates a Machine in Idle. start seeds the activity clock.
func New(dev clock.Device, sched schedule.Scheduler, start time.Time) *Machine {
	return &Machine{
		clock:        dev,
		sched:        sched,
		lastActivity: start,
	}
}

// State returns the current menu state.
func (m *Machine) State() State {
	return m.state
}

// InMenu reports whether an edit sequence is open. The loop uses this to
// gate button repeat.
func (m *Machine) InMenu() bool {
	return m.state != Idle
}

// Buffer returns the value currently being edited. Only meaningful while
// InMenu reports true.
func (m *Machine) Buffer() Buffer {
	return m.buf
}

// Apply feeds one classified button event through the transition table and
// executes its action. It returns which external value, if any, was
// committed. An accepted event (one that changed state or had an effect)
// refreshes the activity clock.
//
// A clock read failure during snapshot still enters the edit sequence (with
// a zeroed buffer) so the panel stays responsive; the error is returned for
// logging only.
func (m *Machine) Apply(src button.ID, ev button.Event, now time.Time) (Commit, error) {
	next, action := Transition(m.state, src, ev)
	if next == m.state && action == ActionNone {
		return CommitNone, nil
	}

	m.lastActivity = now

	commit := CommitNone
	var err error

	switch action {
	case ActionLoadClock:
		var t clock.Time
		if t, err = m.clock.Read(); err != nil {
			err = fmt.Errorf("snapshot clock: %w", err)
		}
		m.buf = Buffer{Hour: t.Hour, Minute: t.Minute}

	case ActionLoadOnTime:
		h, min := m.sched.OnTime()
		m.buf = Buffer{Hour: h, Minute: min}

	case ActionIncHour:
		m.buf.Hour = (m.buf.Hour + 1) % 24

	case ActionIncMinute:
		m.buf.Minute = (m.buf.Minute + 1) % 60

	case ActionCommitOnLoadOff:
		m.sched.SetOnTime(m.buf.Hour, m.buf.Minute)
		h, min := m.sched.OffTime()
		m.buf = Buffer{Hour: h, Minute: min}

	case ActionCommitOffPersist:
		m.sched.SetOffTime(m.buf.Hour, m.buf.Minute)
		commit = CommitSchedule
		if perr := m.sched.Persist(); perr != nil {
			err = fmt.Errorf("persist schedule: %w", perr)
		}

	case ActionCommitClock:
		commit = CommitClock
		if werr := m.clock.Write(clock.Time{Hour: m.buf.Hour, Minute: m.buf.Minute, Second: 0}); werr != nil {
			err = fmt.Errorf("write clock: %w", werr)
		}
	}

	m.state = next
	return commit, err
}

// CheckTimeout forces the machine back to Idle when more than IdleTimeout
// has passed since the last accepted input. Uncommitted edits are discarded;
// nothing is written to the collaborators. Returns true if it fired.
//
// The loop calls this after Apply so an event landing on the same tick as
// the deadline is still honored.
func (m *Machine) CheckTimeout(now time.Time) bool {
	if m.state == Idle {
		return false
	}
	if now.Sub(m.lastActivity) <= IdleTimeout {
		return false
	}
	m.state = Idle
	return true
}
