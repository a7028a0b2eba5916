package render

import (
	"time"

	"github.com/sweeney/lamp-timer/internal/display"
	"github.com/sweeney/lamp-timer/internal/menu"
)

// IdleRefresh caps the idle-screen redraw rate. Menu screens redraw on
// change instead.
const IdleRefresh = time.Second

// Renderer applies the refresh policy against the display. It never mutates
// panel state; the cache only tracks what the hardware currently shows.
type Renderer struct {
	disp display.Display

	drawn     bool
	lastState menu.State
	lastLine1 string
	lastLine2 string
	lastDraw  time.Time
}

// New creates a Renderer for the given display.
func New(disp display.Display) *Renderer {
	return &Renderer{disp: disp}
}

// Render draws the view if the policy calls for it:
//   - first render ever, or the first tick after a state transition:
//     full clear + redraw,
//   - idle: at most one redraw per IdleRefresh,
//   - menu: redraw whenever the lines changed.
func (r *Renderer) Render(v View, now time.Time) error {
	force := !r.drawn || v.State != r.lastState

	if v.State == menu.Idle && !force && now.Sub(r.lastDraw) < IdleRefresh {
		return nil
	}

	line1, line2 := Frame(v)
	if !force && line1 == r.lastLine1 && line2 == r.lastLine2 {
		return nil
	}

	if force {
		if err := r.disp.Clear(); err != nil {
			return err
		}
	}
	if err := r.disp.WriteLine(0, line1); err != nil {
		return err
	}
	if err := r.disp.WriteLine(1, line2); err != nil {
		return err
	}

	r.drawn = true
	r.lastState = v.State
	r.lastLine1 = line1
	r.lastLine2 = line2
	r.lastDraw = now
	return nil
}
