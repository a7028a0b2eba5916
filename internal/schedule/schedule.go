// Package schedule owns the lamp timetable: an on-time, an off-time, and a
// sunset-dim window before the off-time during which brightness ramps down.
// The panel core only talks to the Scheduler interface; nothing in this
// package reads the clock or touches hardware.
package schedule

import "time"

const minutesPerDay = 24 * 60

// Scheduler is the scheduling collaborator seen by the panel core.
type Scheduler interface {
	// Advance recomputes lamp state for the given wall-clock time.
	// Called once per tick, before any rendering.
	Advance(hour, minute int)

	// OnTime returns the hour and minute the lamp switches on.
	OnTime() (int, int)
	// SetOnTime sets the switch-on time.
	SetOnTime(hour, minute int)

	// OffTime returns the hour and minute the lamp switches off.
	OffTime() (int, int)
	// SetOffTime sets the switch-off time.
	SetOffTime(hour, minute int)

	// IsOn reports whether the lamp should be lit.
	IsOn() bool
	// IsDimming reports whether the sunset ramp is active.
	IsDimming() bool
	// Brightness returns the lamp level, 0-255. 255 while fully on,
	// descending during the dim window, 0 while off.
	Brightness() uint8

	// Persist writes the on/off times to durable storage.
	Persist() error
	// Restore loads previously persisted on/off times, if any.
	Restore() error
}

// Schedule is the concrete Scheduler. Not safe for concurrent use; the
// single-threaded tick loop is the only caller.
type Schedule struct {
	path string
	dim  time.Duration

	onHour, onMinute   int
	offHour, offMinute int

	on         bool
	dimming    bool
	brightness uint8
}

// New creates a Schedule persisting to path, with the given sunset-dim
// window (0 disables dimming). Defaults to 17:00 on, 23:00 off until
// Restore or the panel overwrites them.
func New(path string, dim time.Duration) *Schedule {
	return &Schedule{
		path:    path,
		dim:     dim,
		onHour:  17,
		offHour: 23,
	}
}

// Advance recomputes lamp state for the given wall-clock time.
func (s *Schedule) Advance(hour, minute int) {
	now := hour*60 + minute
	on := s.onHour*60 + s.onMinute
	off := s.offHour*60 + s.offMinute

	s.on = litAt(now, on, off)
	s.dimming = false
	s.brightness = 0

	if !s.on {
		return
	}

	s.brightness = 255
	dimMin := int(s.dim / time.Minute)
	if dimMin <= 0 {
		return
	}

	// Minutes until the off-time, wrapping across midnight.
	remaining := (off - now + minutesPerDay) % minutesPerDay
	if remaining <= dimMin {
		s.dimming = true
		s.brightness = uint8(255 * remaining / dimMin)
	}
}

// litAt reports whether a minute-of-day falls inside the lit window.
// on > off means the window crosses midnight.
func litAt(now, on, off int) bool {
	if on == off {
		return false
	}
	if on < off {
		return now >= on && now < off
	}
	return now >= on || now < off
}

// OnTime returns the switch-on time.
func (s *Schedule) OnTime() (int, int) {
	return s.onHour, s.onMinute
}

// SetOnTime sets the switch-on time.
func (s *Schedule) SetOnTime(hour, minute int) {
	s.onHour, s.onMinute = hour, minute
}

// OffTime returns the switch-off time.
func (s *Schedule) OffTime() (int, int) {
	return s.offHour, s.offMinute
}

// SetOffTime sets the switch-off time.
func (s *Schedule) SetOffTime(hour, minute int) {
	s.offHour, s.offMinute = hour, minute
}

// IsOn reports whether the lamp should be lit.
func (s *Schedule) IsOn() bool {
	return s.on
}

// IsDimming reports whether the sunset ramp is active.
func (s *Schedule) IsDimming() bool {
	return s.dimming
}

// Brightness returns the lamp level, 0-255.
func (s *Schedule) Brightness() uint8 {
	return s.brightness
}
