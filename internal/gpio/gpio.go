// Package gpio provides panel button input and the lamp output line with
// hardware abstraction. The real implementation uses the Linux GPIO
// character device. The fake implementation allows testing without hardware.
package gpio

// Reader reads the two panel buttons.
type Reader interface {
	// Read returns the logical pressed states of button 1 and button 2.
	// The raw levels are active-low: raw 0 = pressed.
	// Returns (b1Pressed, b2Pressed, error).
	Read() (bool, bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Lamp drives the lamp relay line.
type Lamp interface {
	// Set switches the lamp line. Idempotent: callers may set the same
	// state every tick.
	Set(on bool) error

	// Close switches the lamp off and releases the line.
	Close() error
}

// Pin defaults (BCM numbering)
const (
	DefaultPinB1   = 23 // menu/clock button
	DefaultPinB2   = 24 // select/advance button
	DefaultPinLamp = 18 // relay module input
)
