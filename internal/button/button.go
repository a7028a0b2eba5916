// Package button classifies raw panel-button levels into press events.
// This package has NO external dependencies (no GPIO, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package button

import "time"

// ID identifies one of the two panel buttons.
type ID int

const (
	Button1 ID = iota
	Button2
)

// String returns the button name for logging.
func (id ID) String() string {
	if id == Button1 {
		return "B1"
	}
	return "B2"
}

// Event is the classification result of a single poll.
// At most one event is produced per button per poll.
type Event int

const (
	// None means nothing observable happened this poll.
	None Event = iota
	// PressStarted marks the down edge. The hold timer starts here;
	// no menu action is attached to it.
	PressStarted
	// ShortReleased marks a release after a press shorter than HoldThreshold
	// that produced no HeldTick.
	ShortReleased
	// HeldTick fires periodically while the button stays down and the
	// owning context has repeat enabled.
	HeldTick
)

// String returns the event name for logging.
func (e Event) String() string {
	switch e {
	case PressStarted:
		return "PRESS"
	case ShortReleased:
		return "SHORT"
	case HeldTick:
		return "HELD"
	default:
		return "NONE"
	}
}

// Timing constants for classification.
const (
	// HoldThreshold separates a short press from a hold.
	HoldThreshold = 800 * time.Millisecond
	// RepeatSlow is the HeldTick interval before HoldThreshold of continuous hold.
	RepeatSlow = 400 * time.Millisecond
	// RepeatFast is the HeldTick interval after HoldThreshold of continuous hold.
	RepeatFast = 100 * time.Millisecond
)

// Runtime tracks one physical button between polls.
// The zero value is ready to use (button assumed up).
type Runtime struct {
	down       bool
	pressedAt  time.Time
	lastRepeat time.Time
	repeated   bool
}

// Poll feeds one sample into the classifier. level is the logical state
// (true = pressed, already inverted from the active-low line). repeat
// enables HeldTick emission; the caller passes false while the menu is idle.
//
// A button that is already down at the very first poll starts a fresh hold
// timer at that poll, so a level held through boot cannot produce an
// instant long-hold.
func (b *Runtime) Poll(level bool, repeat bool, now time.Time) Event {
	switch {
	case level && !b.down:
		b.down = true
		b.pressedAt = now
		b.lastRepeat = now
		b.repeated = false
		return PressStarted

	case level && b.down:
		if !repeat {
			return None
		}
		interval := RepeatSlow
		if now.Sub(b.pressedAt) >= HoldThreshold {
			interval = RepeatFast
		}
		if now.Sub(b.lastRepeat) >= interval {
			b.lastRepeat = now
			b.repeated = true
			return HeldTick
		}
		return None

	case !level && b.down:
		b.down = false
		// A press that crossed the hold threshold, or that already produced
		// HeldTicks, did its job while down. Only a clean short press
		// produces a release event.
		if b.repeated || now.Sub(b.pressedAt) >= HoldThreshold {
			return None
		}
		return ShortReleased

	default:
		return None
	}
}

// IsDown reports whether the button is currently held.
func (b *Runtime) IsDown() bool {
	return b.down
}
