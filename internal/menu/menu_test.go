package menu

import (
	"testing"

	"github.com/sweeney/lamp-timer/internal/button"
)

var allStates = []State{
	Idle, SetOnHour, SetOnMinute, SetOffHour, SetOffMinute, SetClockHour, SetClockMinute,
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		state  State
		src    button.ID
		ev     button.Event
		want   State
		action Action
	}{
		{Idle, button.Button1, button.ShortReleased, SetClockHour, ActionLoadClock},
		{Idle, button.Button2, button.ShortReleased, SetOnHour, ActionLoadOnTime},

		{SetOnHour, button.Button1, button.HeldTick, SetOnHour, ActionIncHour},
		{SetOnHour, button.Button2, button.ShortReleased, SetOnMinute, ActionNone},

		{SetOnMinute, button.Button1, button.HeldTick, SetOnMinute, ActionIncMinute},
		{SetOnMinute, button.Button2, button.ShortReleased, SetOffHour, ActionCommitOnLoadOff},

		{SetOffHour, button.Button1, button.HeldTick, SetOffHour, ActionIncHour},
		{SetOffHour, button.Button2, button.ShortReleased, SetOffMinute, ActionNone},

		{SetOffMinute, button.Button1, button.HeldTick, SetOffMinute, ActionIncMinute},
		{SetOffMinute, button.Button2, button.ShortReleased, Idle, ActionCommitOffPersist},

		{SetClockHour, button.Button1, button.HeldTick, SetClockHour, ActionIncHour},
		{SetClockHour, button.Button2, button.ShortReleased, SetClockMinute, ActionNone},

		{SetClockMinute, button.Button1, button.HeldTick, SetClockMinute, ActionIncMinute},
		{SetClockMinute, button.Button2, button.ShortReleased, Idle, ActionCommitClock},
	}

	for _, c := range cases {
		got, action := Transition(c.state, c.src, c.ev)
		if got != c.want || action != c.action {
			t.Errorf("Transition(%v, %v, %v) = (%v, %v), want (%v, %v)",
				c.state, c.src, c.ev, got, action, c.want, c.action)
		}
	}
}

func TestTransitionIgnoresUnlistedEvents(t *testing.T) {
	for _, s := range allStates {
		for _, src := range []button.ID{button.Button1, button.Button2} {
			got, action := Transition(s, src, button.PressStarted)
			if got != s || action != ActionNone {
				t.Errorf("PressStarted in %v from %v: got (%v, %v), want no-op", s, src, got, action)
			}
		}
		// HeldTick on Button2 never does anything.
		got, action := Transition(s, button.Button2, button.HeldTick)
		if got != s || action != ActionNone {
			t.Errorf("B2 HeldTick in %v: got (%v, %v), want no-op", s, got, action)
		}
	}

	// ShortReleased on Button1 only acts from Idle.
	for _, s := range allStates[1:] {
		got, action := Transition(s, button.Button1, button.ShortReleased)
		if got != s || action != ActionNone {
			t.Errorf("B1 ShortReleased in %v: got (%v, %v), want no-op", s, got, action)
		}
	}
}

func TestEditsHour(t *testing.T) {
	hourStates := map[State]bool{
		SetOnHour: true, SetOffHour: true, SetClockHour: true,
	}
	for _, s := range allStates {
		if s.EditsHour() != hourStates[s] {
			t.Errorf("%v.EditsHour() = %v", s, s.EditsHour())
		}
	}
}

func TestStateStrings(t *testing.T) {
	for _, s := range allStates {
		if s.String() == "UNKNOWN" || s.String() == "" {
			t.Errorf("state %d has no name", int(s))
		}
	}
	if State(99).String() != "UNKNOWN" {
		t.Error("out-of-range state should be UNKNOWN")
	}
}
