// Package render projects panel state onto the two display lines and applies
// the refresh policy. Frame is a pure function; Renderer owns the draw cache
// and talks to the display collaborator.
package render

import (
	"fmt"

	"github.com/sweeney/lamp-timer/internal/clock"
	"github.com/sweeney/lamp-timer/internal/display"
	"github.com/sweeney/lamp-timer/internal/menu"
)

// Lamp is the scheduler status shown on the idle screen.
type Lamp struct {
	On         bool
	Dimming    bool
	Brightness uint8
}

// View is everything a frame depends on. Building one per tick keeps Frame
// free of collaborator calls.
type View struct {
	State menu.State
	Buf   menu.Buffer

	Clock clock.Time

	OnHour, OnMinute   int
	OffHour, OffMinute int

	Lamp Lamp
}

// Frame returns the two 16-character display lines for a view. Both lines
// are exactly display.Cols wide for every reachable state.
func Frame(v View) (string, string) {
	if v.State == menu.Idle {
		return idleFrame(v)
	}
	return editFrame(v)
}

func idleFrame(v View) (string, string) {
	// "HH:MM->HH:MM" is 12 chars; the lamp glyph sits in the last column.
	sched := fmt.Sprintf("%02d:%02d->%02d:%02d", v.OnHour, v.OnMinute, v.OffHour, v.OffMinute)
	line1 := pad(sched, display.Cols-1) + string(rune(display.GlyphLamp))

	line2 := pad(v.Clock.String(), display.Cols-4) + statusField(v.Lamp)
	return line1, line2
}

func editFrame(v View) (string, string) {
	line1 := pad("Set "+label(v.State), display.Cols)

	tag := "min "
	if v.State.EditsHour() {
		tag = "hour"
	}
	line2 := pad(fmt.Sprintf("%02d:%02d [%s]", v.Buf.Hour, v.Buf.Minute, tag), display.Cols)
	return line1, line2
}

// statusField is the 4-character lamp status: " ON ", "OFF ", or the dim
// percentage right-aligned with a trailing %.
func statusField(l Lamp) string {
	switch {
	case l.Dimming:
		return fmt.Sprintf("%3d%%", int(l.Brightness)*100/255)
	case l.On:
		return " ON "
	default:
		return "OFF "
	}
}

// label names the value being configured.
func label(s menu.State) string {
	switch s {
	case menu.SetOnHour, menu.SetOnMinute:
		return "ON time"
	case menu.SetOffHour, menu.SetOffMinute:
		return "OFF time"
	default:
		return "Clock"
	}
}

// pad right-pads (or truncates) s to exactly n characters.
func pad(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + spaces[:n-len(s)]
}

const spaces = "                " // display.Cols worth
