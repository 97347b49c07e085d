//go:build linux

package rtc

import (
	"errors"
	"fmt"

	"github.com/davecheney/i2c"

	"github.com/sweeney/bedside-clock/internal/timeval"
)

// DefaultBus is the I2C bus the clock module usually hangs off.
const DefaultBus = 1

// addr is the fixed I2C address of the DS1307.
const addr = 0x68

// Register layout. Seconds carry the clock-halt bit; hours carry the
// 12-hour mode bit and, in that mode, the PM bit.
const (
	regSeconds = 0x00
	regMinutes = 0x01
	regHours   = 0x02

	bitClockHalt = 0x80
	bit12Hour    = 0x40
	bitPM        = 0x20
)

// ErrHalted is returned by Read when the oscillator is stopped, i.e. the
// chip has never been set (or lost backup power) and holds no valid time.
var ErrHalted = errors.New("rtc: oscillator halted, time not set")

// Clock is an open DS1307.
type Clock struct {
	bus *i2c.I2C
}

// Open connects to the DS1307 on the given I2C bus.
func Open(bus int) (*Clock, error) {
	b, err := i2c.New(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %d: %w", bus, err)
	}
	return &Clock{bus: b}, nil
}

// Read returns the current time of day. A chip left in 12-hour mode is
// converted to 24-hour on the way out.
func (c *Clock) Read() (timeval.Time, error) {
	if _, err := c.bus.Write([]byte{regSeconds}); err != nil {
		return timeval.Time{}, fmt.Errorf("set register pointer: %w", err)
	}

	buf := make([]byte, 3)
	if _, err := c.bus.Read(buf); err != nil {
		return timeval.Time{}, fmt.Errorf("read time registers: %w", err)
	}

	if buf[regSeconds]&bitClockHalt != 0 {
		return timeval.Time{}, ErrHalted
	}

	sec, err := fromBCD(buf[regSeconds] &^ bitClockHalt)
	if err != nil {
		return timeval.Time{}, fmt.Errorf("seconds: %w", err)
	}
	min, err := fromBCD(buf[regMinutes])
	if err != nil {
		return timeval.Time{}, fmt.Errorf("minutes: %w", err)
	}

	hourReg := buf[regHours]
	var hour int
	if hourReg&bit12Hour != 0 {
		h, err := fromBCD(hourReg &^ (bit12Hour | bitPM))
		if err != nil {
			return timeval.Time{}, fmt.Errorf("hours: %w", err)
		}
		hour = h % 12
		if hourReg&bitPM != 0 {
			hour += 12
		}
	} else {
		h, err := fromBCD(hourReg)
		if err != nil {
			return timeval.Time{}, fmt.Errorf("hours: %w", err)
		}
		hour = h
	}

	return timeval.Time{Hour: hour, Minute: min, Second: sec}, nil
}

// Write sets the time of day in 24-hour mode and starts the oscillator.
// t must hold a 24-hour value.
func (c *Clock) Write(t timeval.Time) error {
	buf := []byte{
		regSeconds,
		toBCD(t.Second), // clock-halt bit clear: oscillator running
		toBCD(t.Minute),
		toBCD(t.Hour), // 12-hour bit clear: 24-hour mode
	}
	if _, err := c.bus.Write(buf); err != nil {
		return fmt.Errorf("write time registers: %w", err)
	}
	return nil
}

// Close releases the bus.
func (c *Clock) Close() error {
	return c.bus.Close()
}
