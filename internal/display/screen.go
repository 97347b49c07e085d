//go:build linux

package display

import (
	"fmt"
	"time"

	"github.com/davecheney/i2c"

	"github.com/sweeney/bedside-clock/internal/device"
)

// Default I2C location of the ST7032 controller.
const (
	DefaultBus  = 1
	DefaultAddr = 0x3e
)

// Command and data prefix bytes of the ST7032 protocol.
const (
	prefixCommand = 0x00
	prefixData    = 0x40
)

// Screen drives the LCD over I2C. Rows are cached so a refresh only touches
// the bus when the rendered text changed.
type Screen struct {
	bus  *i2c.I2C
	last [2]string
}

// NewScreen opens the display on the given I2C bus and address and runs the
// controller init sequence.
func NewScreen(bus int, addr uint8) (*Screen, error) {
	b, err := i2c.New(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %d: %w", bus, err)
	}

	s := &Screen{bus: b}
	if err := s.configure(); err != nil {
		b.Close()
		return nil, fmt.Errorf("configure display: %w", err)
	}
	return s, nil
}

// configure runs the ST7032 power-up sequence: function set, internal osc,
// contrast, booster, follower, display on, clear, entry mode.
func (s *Screen) configure() error {
	time.Sleep(100 * time.Millisecond)
	for _, c := range []byte{0x38, 0x39, 0x14, 0x73, 0x5e, 0x6c} {
		if err := s.command(c); err != nil {
			return err
		}
		time.Sleep(time.Millisecond)
	}
	// Booster stabilization before display on.
	time.Sleep(200 * time.Millisecond)
	for _, c := range []byte{0x0c, 0x01, 0x06} {
		if err := s.command(c); err != nil {
			return err
		}
		time.Sleep(2 * time.Millisecond)
	}
	return nil
}

// Update renders the snapshot and writes any changed rows.
func (s *Screen) Update(snap device.Snapshot, blink bool) error {
	row1, row2 := Render(snap, blink)
	for row, text := range [2]string{row1, row2} {
		if text == s.last[row] {
			continue
		}
		if err := s.writeRow(row, text); err != nil {
			return err
		}
		s.last[row] = text
	}
	return nil
}

// Close blanks the display and releases the bus.
func (s *Screen) Close() error {
	_ = s.command(0x08) // display off
	return s.bus.Close()
}

func (s *Screen) command(c byte) error {
	_, err := s.bus.Write([]byte{prefixCommand, c})
	return err
}

func (s *Screen) writeRow(row int, text string) error {
	// Set DDRAM address to the start of the row.
	if err := s.command(byte(0x80 + row*0x40)); err != nil {
		return err
	}
	_, err := s.bus.Write(append([]byte{prefixData}, text...))
	return err
}
