// Package menu holds the panel's edit state machine: seven states walking
// the operator through schedule and clock edits, an edit buffer that is only
// committed at terminal steps, and the inactivity timeout. The transition
// table is a pure function so every row is testable in isolation.
package menu

import "github.com/sweeney/lamp-timer/internal/button"

// State is the current menu position. Exactly one value is current at any
// time; transitions happen only through Machine.Apply and CheckTimeout.
type State int

const (
	Idle State = iota
	SetOnHour
	SetOnMinute
	SetOffHour
	SetOffMinute
	SetClockHour
	SetClockMinute
)

// String returns the state name for logging and the status page.
func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case SetOnHour:
		return "SET_ON_HOUR"
	case SetOnMinute:
		return "SET_ON_MINUTE"
	case SetOffHour:
		return "SET_OFF_HOUR"
	case SetOffMinute:
		return "SET_OFF_MINUTE"
	case SetClockHour:
		return "SET_CLOCK_HOUR"
	case SetClockMinute:
		return "SET_CLOCK_MINUTE"
	default:
		return "UNKNOWN"
	}
}

// EditsHour reports whether Button1 increments the hour half of the buffer
// in this state (as opposed to the minute half).
func (s State) EditsHour() bool {
	return s == SetOnHour || s == SetOffHour || s == SetClockHour
}

// Buffer is the hour/minute pair being edited. Meaningful only while the
// state is not Idle.
type Buffer struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// Action is the side effect attached to a transition.
type Action int

const (
	ActionNone Action = iota
	// ActionLoadClock snapshots the external clock into the buffer.
	ActionLoadClock
	// ActionLoadOnTime snapshots the schedule's on-time into the buffer.
	ActionLoadOnTime
	// ActionIncHour increments the buffer hour mod 24.
	ActionIncHour
	// ActionIncMinute increments the buffer minute mod 60.
	ActionIncMinute
	// ActionCommitOnLoadOff commits the buffer as the schedule on-time,
	// then snapshots the off-time into the buffer.
	ActionCommitOnLoadOff
	// ActionCommitOffPersist commits the buffer as the schedule off-time
	// and persists the schedule.
	ActionCommitOffPersist
	// ActionCommitClock commits the buffer as the clock time, seconds zeroed.
	ActionCommitClock
)

// Transition is the pure transition table for operator input: given the
// current state and a classified button event, it returns the next state and
// the action to execute. Combinations outside the table leave the state
// unchanged with ActionNone.
func Transition(s State, src button.ID, ev button.Event) (State, Action) {
	switch src {
	case button.Button1:
		switch {
		case s == Idle && ev == button.ShortReleased:
			return SetClockHour, ActionLoadClock
		case ev == button.HeldTick && s.EditsHour():
			return s, ActionIncHour
		case ev == button.HeldTick && s != Idle:
			return s, ActionIncMinute
		}

	case button.Button2:
		if ev != button.ShortReleased {
			break
		}
		switch s {
		case Idle:
			return SetOnHour, ActionLoadOnTime
		case SetOnHour:
			return SetOnMinute, ActionNone
		case SetOnMinute:
			return SetOffHour, ActionCommitOnLoadOff
		case SetOffHour:
			return SetOffMinute, ActionNone
		case SetOffMinute:
			return Idle, ActionCommitOffPersist
		case SetClockHour:
			return SetClockMinute, ActionNone
		case SetClockMinute:
			return Idle, ActionCommitClock
		}
	}

	return s, ActionNone
}
