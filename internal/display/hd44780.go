package display

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// PCF8574 backpack bit mapping (the common wiring).
const (
	pinRS        = 0x01
	pinEN        = 0x04
	pinBacklight = 0x08
)

// HD44780 commands.
const (
	cmdClear        = 0x01
	cmdEntryMode    = 0x06 // increment, no shift
	cmdDisplayOn    = 0x0c // display on, cursor off, blink off
	cmdFunction4Bit = 0x28 // 4-bit bus, 2 lines, 5x8 font
	cmdSetCGRAM     = 0x40
	cmdSetDDRAM     = 0x80
)

// DDRAM start address per row on a 16x2 module.
var rowAddr = [Rows]byte{0x00, 0x40}

// lampGlyph is the 5x8 bitmap uploaded to CGRAM slot 1 (a small bulb).
var lampGlyph = [8]byte{
	0b01110,
	0b10001,
	0b10001,
	0b10001,
	0b01110,
	0b01110,
	0b00100,
	0b00000,
}

// HD44780 drives the panel LCD over a PCF8574 I2C backpack in 4-bit mode.
type HD44780 struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

// NewHD44780 opens the display on the given I2C bus ("" selects the first
// available bus) at the given backpack address and runs the init sequence.
func NewHD44780(busName string, addr uint16) (*HD44780, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	d := &HD44780{bus: bus, dev: i2c.Dev{Addr: addr, Bus: bus}}
	if err := d.init(); err != nil {
		bus.Close()
		return nil, fmt.Errorf("init hd44780: %w", err)
	}
	return d, nil
}

// init runs the datasheet 4-bit wake-up dance, configures the module, and
// uploads the lamp glyph.
func (d *HD44780) init() error {
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		if err := d.writeNibble(0x03, false); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err := d.writeNibble(0x02, false); err != nil {
		return err
	}

	for _, cmd := range []byte{cmdFunction4Bit, cmdDisplayOn, cmdEntryMode} {
		if err := d.writeByte(cmd, false); err != nil {
			return err
		}
	}
	if err := d.Clear(); err != nil {
		return err
	}

	if err := d.writeByte(cmdSetCGRAM|byte(GlyphLamp)<<3, false); err != nil {
		return err
	}
	for _, row := range lampGlyph {
		if err := d.writeByte(row, true); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine draws text on the given row, padded or truncated to Cols.
func (d *HD44780) WriteLine(row int, text string) error {
	if row < 0 || row >= Rows {
		return fmt.Errorf("row %d out of range", row)
	}
	if err := d.writeByte(cmdSetDDRAM|rowAddr[row], false); err != nil {
		return fmt.Errorf("address row %d: %w", row, err)
	}

	b := []byte(text)
	for col := 0; col < Cols; col++ {
		c := byte(' ')
		if col < len(b) {
			c = b[col]
		}
		if err := d.writeByte(c, true); err != nil {
			return fmt.Errorf("write row %d col %d: %w", row, col, err)
		}
	}
	return nil
}

// Clear blanks the display. The clear command needs extra settle time.
func (d *HD44780) Clear() error {
	if err := d.writeByte(cmdClear, false); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	time.Sleep(2 * time.Millisecond)
	return nil
}

// Close switches the backlight off and releases the I2C bus.
func (d *HD44780) Close() error {
	// Leave the expander with backlight and control lines low.
	d.dev.Tx([]byte{0x00}, nil)
	return d.bus.Close()
}

// writeByte sends one byte as two nibbles, high first.
func (d *HD44780) writeByte(b byte, data bool) error {
	if err := d.writeNibble(b>>4, data); err != nil {
		return err
	}
	return d.writeNibble(b&0x0f, data)
}

// writeNibble puts the nibble on P4-P7 and pulses EN.
func (d *HD44780) writeNibble(n byte, data bool) error {
	b := n<<4 | pinBacklight
	if data {
		b |= pinRS
	}
	for _, out := range []byte{b | pinEN, b} {
		if err := d.dev.Tx([]byte{out}, nil); err != nil {
			return err
		}
	}
	return nil
}
