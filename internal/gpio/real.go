//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader reads the panel buttons from actual hardware using the Linux
// GPIO character device.
type RealReader struct {
	chip  *gpiocdev.Chip
	b1Pin *gpiocdev.Line
	b2Pin *gpiocdev.Line
}

// NewRealReader requests the two button lines. The buttons short to ground,
// so the lines are inputs with pull-ups and a pressed button reads 0.
func NewRealReader(pinB1, pinB2 int) (*RealReader, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	b1Line, err := chip.RequestLine(pinB1, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request B1 pin %d: %w", pinB1, err)
	}

	b2Line, err := chip.RequestLine(pinB2, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		b1Line.Close()
		chip.Close()
		return nil, fmt.Errorf("request B2 pin %d: %w", pinB2, err)
	}

	return &RealReader{
		chip:  chip,
		b1Pin: b1Line,
		b2Pin: b2Line,
	}, nil
}

// Read returns the logical pressed states of both buttons.
// Inverts raw levels: raw 0 (line pulled to ground) = pressed.
func (r *RealReader) Read() (bool, bool, error) {
	b1Raw, err := r.b1Pin.Value()
	if err != nil {
		return false, false, fmt.Errorf("read B1 pin: %w", err)
	}

	b2Raw, err := r.b2Pin.Value()
	if err != nil {
		return false, false, fmt.Errorf("read B2 pin: %w", err)
	}

	return b1Raw == 0, b2Raw == 0, nil
}

// Close releases GPIO resources. The lines stay inputs with pull-ups, which
// matches the board's boot state.
func (r *RealReader) Close() error {
	var errs []error

	for _, line := range []*gpiocdev.Line{r.b1Pin, r.b2Pin} {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// RealLamp drives the relay line through the GPIO character device.
type RealLamp struct {
	chip *gpiocdev.Chip
	pin  *gpiocdev.Line
}

// NewRealLamp requests the lamp line as an output, initially off.
func NewRealLamp(pin int) (*RealLamp, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request lamp pin %d: %w", pin, err)
	}

	return &RealLamp{chip: chip, pin: line}, nil
}

// Set switches the relay.
func (l *RealLamp) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := l.pin.SetValue(v); err != nil {
		return fmt.Errorf("set lamp pin: %w", err)
	}
	return nil
}

// Close switches the lamp off, reconfigures the pin to input with pull-down
// (the board's boot default, so a reboot cannot leave the relay energized),
// and releases resources.
func (l *RealLamp) Close() error {
	var errs []error

	if l.pin != nil {
		if err := l.pin.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("lamp off: %w", err))
		}
		if err := l.pin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure lamp pin: %w", err))
		}
		if err := l.pin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close lamp pin: %w", err))
		}
	}
	if l.chip != nil {
		if err := l.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
