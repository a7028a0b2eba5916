// Package clock provides the real-time clock collaborator with hardware
// abstraction. The real implementation talks to a DS1307 over I2C.
// The fake implementation allows testing without hardware.
package clock

import "fmt"

// Time is a wall-clock reading from the RTC.
type Time struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// String formats the reading as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Device reads and sets the hardware clock.
type Device interface {
	// Read returns the current clock value.
	Read() (Time, error)

	// Write sets the clock. Callers setting the time from the panel pass
	// Second = 0.
	Write(t Time) error

	// Close releases clock resources.
	Close() error
}

// Default DS1307 I2C address.
const DefaultAddr = 0x68
