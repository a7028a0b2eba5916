package clock

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// DS1307 register layout: 0x00 seconds (bit 7 = clock halt), 0x01 minutes,
// 0x02 hours (bit 6 selects 12h mode; kept clear for 24h). All BCD.
const (
	regSeconds = 0x00

	chBit    = 0x80 // clock halt, seconds register
	hourMask = 0x3f // 24h mode
)

// DS1307 is a battery-backed RTC on the I2C bus.
type DS1307 struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

// NewDS1307 opens the RTC on the given I2C bus ("" selects the first
// available bus) at the given address.
func NewDS1307(busName string, addr uint16) (*DS1307, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	return &DS1307{
		bus: bus,
		dev: i2c.Dev{Addr: addr, Bus: bus},
	}, nil
}

// Read returns the current clock value.
func (c *DS1307) Read() (Time, error) {
	var reg [3]byte
	if err := c.dev.Tx([]byte{regSeconds}, reg[:]); err != nil {
		return Time{}, fmt.Errorf("read rtc registers: %w", err)
	}

	return Time{
		Second: fromBCD(reg[0] &^ chBit),
		Minute: fromBCD(reg[1]),
		Hour:   fromBCD(reg[2] & hourMask),
	}, nil
}

// Write sets the clock. Writing the seconds register with the halt bit
// clear also (re)starts the oscillator.
func (c *DS1307) Write(t Time) error {
	buf := []byte{
		regSeconds,
		toBCD(t.Second) &^ chBit,
		toBCD(t.Minute),
		toBCD(t.Hour) & hourMask,
	}
	if err := c.dev.Tx(buf, nil); err != nil {
		return fmt.Errorf("write rtc registers: %w", err)
	}
	return nil
}

// Close releases the I2C bus.
func (c *DS1307) Close() error {
	return c.bus.Close()
}

func fromBCD(b byte) int {
	return int(b>>4)*10 + int(b&0x0f)
}

func toBCD(n int) byte {
	return byte(n/10)<<4 | byte(n%10)
}
