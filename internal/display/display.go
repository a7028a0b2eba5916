// Package display provides the 16x2 character display collaborator with
// hardware abstraction. The real implementation drives an HD44780 behind a
// PCF8574 I2C backpack. The fake implementation allows testing without
// hardware.
package display

// Geometry of the panel display.
const (
	Rows = 2
	Cols = 16
)

// GlyphLamp is the character code of the custom lamp glyph. The renderer
// emits it in line text; the real driver uploads the glyph to CGRAM slot 1
// at init, the fake passes it through untouched.
const GlyphLamp = '\x01'

// Display is a line-addressed two-row text display.
type Display interface {
	// WriteLine draws text on the given row (0 or 1). Text longer than
	// Cols is truncated; shorter text is padded with spaces.
	WriteLine(row int, text string) error

	// Clear blanks the whole display.
	Clear() error

	// Close releases display resources.
	Close() error
}

// Default I2C address of the common PCF8574 backpack.
const DefaultAddr = 0x27
