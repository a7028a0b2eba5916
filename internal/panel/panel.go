// Package panel ties the tick loop together: clock, schedule, buttons, menu
// machine, and renderer, in the fixed per-tick order. It owns no goroutines
// and never sleeps; the caller drives it with polled button levels and a
// timestamp.
package panel

import (
	"log"
	"time"

	"github.com/sweeney/lamp-timer/internal/button"
	"github.com/sweeney/lamp-timer/internal/clock"
	"github.com/sweeney/lamp-timer/internal/display"
	"github.com/sweeney/lamp-timer/internal/menu"
	"github.com/sweeney/lamp-timer/internal/render"
	"github.com/sweeney/lamp-timer/internal/schedule"
)

// Controller runs one panel. Single-threaded: only the tick loop calls it.
type Controller struct {
	clock clock.Device
	sched schedule.Scheduler

	machine  *menu.Machine
	renderer *render.Renderer

	b1 button.Runtime
	b2 button.Runtime

	lastReading clock.Time
	haveReading bool

	wasOn      bool
	wasDimming bool
	primed     bool
}

// New creates a Controller. start seeds the menu activity clock.
func New(dev clock.Device, sched schedule.Scheduler, disp display.Display, start time.Time) *Controller {
	return &Controller{
		clock:    dev,
		sched:    sched,
		machine:  menu.New(dev, sched, start),
		renderer: render.New(disp),
	}
}

// State returns the current menu state, for the status tracker.
func (c *Controller) State() menu.State {
	return c.machine.State()
}

// LastReading returns the most recent successful clock read.
func (c *Controller) LastReading() clock.Time {
	return c.lastReading
}

// Tick runs one loop iteration in the fixed order: read clock, advance the
// schedule, classify and apply button events, render, then check the idle
// timeout. The timeout runs last so an event arriving on the deadline tick
// is still honored. Returned events are telemetry for the caller to publish.
func (c *Controller) Tick(b1Level, b2Level bool, now time.Time) []Event {
	var events []Event

	// 1. Clock. A failed read keeps the previous value on screen; a broken
	// peripheral is not this layer's problem.
	if t, err := c.clock.Read(); err != nil {
		log.Printf("clock read error: %v", err)
	} else {
		c.lastReading = t
		c.haveReading = true
	}

	// 2. Schedule owns all on/off and dimming computation.
	c.sched.Advance(c.lastReading.Hour, c.lastReading.Minute)
	events = c.lampEvents(events, now)

	// 3. Buttons. Repeat is only enabled while a menu is open.
	for _, in := range []struct {
		id    button.ID
		rt    *button.Runtime
		level bool
	}{
		{button.Button1, &c.b1, b1Level},
		{button.Button2, &c.b2, b2Level},
	} {
		ev := in.rt.Poll(in.level, c.machine.InMenu(), now)
		if ev == button.None {
			continue
		}
		commit, err := c.machine.Apply(in.id, ev, now)
		if err != nil {
			log.Printf("%v %v: %v", in.id, ev, err)
		}
		events = c.commitEvents(events, commit, now)
	}

	// 4. Render under the refresh policy.
	if err := c.renderer.Render(c.view(), now); err != nil {
		log.Printf("render error: %v", err)
	}

	// 5. Idle timeout, after state updates.
	if c.machine.CheckTimeout(now) {
		log.Printf("menu timeout, discarding edit")
	}

	return events
}

// view assembles the renderer input from current state.
func (c *Controller) view() render.View {
	onH, onM := c.sched.OnTime()
	offH, offM := c.sched.OffTime()
	return render.View{
		State:   c.machine.State(),
		Buf:     c.machine.Buffer(),
		Clock:   c.lastReading,
		OnHour:  onH, OnMinute: onM,
		OffHour: offH, OffMinute: offM,
		Lamp: render.Lamp{
			On:         c.sched.IsOn(),
			Dimming:    c.sched.IsDimming(),
			Brightness: c.sched.Brightness(),
		},
	}
}

// lampEvents emits lamp state transitions. The first tick only records the
// baseline; the startup snapshot already carries the initial state.
func (c *Controller) lampEvents(events []Event, now time.Time) []Event {
	on, dimming := c.sched.IsOn(), c.sched.IsDimming()
	if !c.primed {
		c.primed = true
		c.wasOn, c.wasDimming = on, dimming
		return events
	}

	switch {
	case on && !c.wasOn:
		events = append(events, Event{Timestamp: now, Type: EventLampOn, Brightness: c.sched.Brightness()})
	case !on && c.wasOn:
		events = append(events, Event{Timestamp: now, Type: EventLampOff})
	case dimming && !c.wasDimming:
		events = append(events, Event{Timestamp: now, Type: EventLampDim, Brightness: c.sched.Brightness()})
	}

	c.wasOn, c.wasDimming = on, dimming
	return events
}

// commitEvents emits telemetry for menu commits.
func (c *Controller) commitEvents(events []Event, commit menu.Commit, now time.Time) []Event {
	switch commit {
	case menu.CommitSchedule:
		onH, onM := c.sched.OnTime()
		offH, offM := c.sched.OffTime()
		events = append(events, Event{
			Timestamp: now,
			Type:      EventScheduleSet,
			OnHour:    onH, OnMinute: onM,
			OffHour: offH, OffMinute: offM,
		})
	case menu.CommitClock:
		buf := c.machine.Buffer()
		events = append(events, Event{
			Timestamp: now,
			Type:      EventClockSet,
			Hour:      buf.Hour, Minute: buf.Minute,
		})
	}
	return events
}
