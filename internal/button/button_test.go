package button

import (
	"testing"
	"time"
)

func at(ms int) time.Time {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(ms) * time.Millisecond)
}

func TestShortPress(t *testing.T) {
	var b Runtime

	if ev := b.Poll(true, false, at(0)); ev != PressStarted {
		t.Fatalf("down edge: got %v, want PressStarted", ev)
	}
	if ev := b.Poll(true, false, at(100)); ev != None {
		t.Errorf("held at 100ms without repeat: got %v, want None", ev)
	}
	if ev := b.Poll(false, false, at(200)); ev != ShortReleased {
		t.Errorf("release at 200ms: got %v, want ShortReleased", ev)
	}
}

func TestReleaseAtThresholdIsNotShort(t *testing.T) {
	var b Runtime

	b.Poll(true, false, at(0))
	if ev := b.Poll(false, false, at(800)); ev != None {
		t.Errorf("release at exactly 800ms: got %v, want None", ev)
	}
}

func TestReleaseJustBelowThresholdIsShort(t *testing.T) {
	var b Runtime

	b.Poll(true, false, at(0))
	if ev := b.Poll(false, false, at(799)); ev != ShortReleased {
		t.Errorf("release at 799ms: got %v, want ShortReleased", ev)
	}
}

func TestNoRepeatWhileIdleContext(t *testing.T) {
	var b Runtime

	b.Poll(true, false, at(0))
	for ms := 50; ms <= 2000; ms += 50 {
		if ev := b.Poll(true, false, at(ms)); ev != None {
			t.Fatalf("held at %dms with repeat disabled: got %v, want None", ms, ev)
		}
	}
	// Long hold, no HeldTick fired, but duration >= threshold: still no release event.
	if ev := b.Poll(false, false, at(2050)); ev != None {
		t.Errorf("release after long hold: got %v, want None", ev)
	}
}

func TestRepeatRateAccelerates(t *testing.T) {
	var b Runtime

	b.Poll(true, true, at(0))

	var ticks []int
	for ms := 10; ms <= 1500; ms += 10 {
		if ev := b.Poll(true, true, at(ms)); ev == HeldTick {
			ticks = append(ticks, ms)
		}
	}

	if len(ticks) == 0 {
		t.Fatal("no HeldTicks during a 1.5s hold")
	}
	if ticks[0] != 400 {
		t.Errorf("first HeldTick at %dms, want 400", ticks[0])
	}

	prev := 0
	for _, ms := range ticks {
		gap := ms - prev
		if prev != 0 {
			if prev < 800 && gap < 400 {
				t.Errorf("gap before 800ms of hold: %dms, want >= 400", gap)
			}
			if gap < 100 {
				t.Errorf("gap after 800ms of hold: %dms, want >= 100", gap)
			}
		}
		prev = ms
	}

	// With 10ms polling the fast phase must actually deliver roughly one
	// tick per 100ms. 400, 800, then every 100ms from 900 to 1500.
	if len(ticks) < 8 {
		t.Errorf("got %d HeldTicks over 1.5s, want at least 8 (%v)", len(ticks), ticks)
	}
}

func TestHeldTickSuppressesShortReleased(t *testing.T) {
	var b Runtime

	b.Poll(true, true, at(0))
	if ev := b.Poll(true, true, at(400)); ev != HeldTick {
		t.Fatalf("at 400ms: got %v, want HeldTick", ev)
	}
	// Release well below the hold threshold, but a HeldTick already fired.
	if ev := b.Poll(false, true, at(450)); ev != None {
		t.Errorf("release after HeldTick: got %v, want None", ev)
	}
}

func TestCoarsePollingStillTicks(t *testing.T) {
	// Polling slower than the repeat interval must not lose the hold,
	// only reduce the tick rate.
	var b Runtime

	b.Poll(true, true, at(0))
	count := 0
	for ms := 450; ms <= 2250; ms += 450 {
		if ev := b.Poll(true, true, at(ms)); ev == HeldTick {
			count++
		}
	}
	if count != 5 {
		t.Errorf("got %d HeldTicks with 450ms polling, want 5", count)
	}
}

func TestDownAtFirstPollStartsFreshPress(t *testing.T) {
	var b Runtime

	// Button already held when the loop starts: treated as a press
	// beginning at the first observed sample.
	if ev := b.Poll(true, false, at(0)); ev != PressStarted {
		t.Fatalf("first poll with level down: got %v, want PressStarted", ev)
	}
	if ev := b.Poll(false, false, at(100)); ev != ShortReleased {
		t.Errorf("release 100ms after first poll: got %v, want ShortReleased", ev)
	}
}

func TestNewPressResetsHoldState(t *testing.T) {
	var b Runtime

	// First press: long hold with ticks.
	b.Poll(true, true, at(0))
	b.Poll(true, true, at(400))  // HeldTick
	b.Poll(true, true, at(1000)) // HeldTick (fast phase)
	b.Poll(false, true, at(1100))

	// Second press: short, must emit ShortReleased despite the earlier ticks.
	if ev := b.Poll(true, true, at(2000)); ev != PressStarted {
		t.Fatalf("second down edge: got %v", ev)
	}
	if ev := b.Poll(false, true, at(2100)); ev != ShortReleased {
		t.Errorf("second release: got %v, want ShortReleased", ev)
	}
}

func TestIsDown(t *testing.T) {
	var b Runtime

	if b.IsDown() {
		t.Error("zero value should be up")
	}
	b.Poll(true, false, at(0))
	if !b.IsDown() {
		t.Error("should be down after down edge")
	}
	b.Poll(false, false, at(100))
	if b.IsDown() {
		t.Error("should be up after release")
	}
}
