//go:build !linux

package rtc

import (
	"errors"

	"github.com/sweeney/bedside-clock/internal/timeval"
)

const DefaultBus = 1

// ErrHalted is returned by Read when the chip holds no valid time.
var ErrHalted = errors.New("rtc: oscillator halted, time not set")

// Clock is not available on non-Linux platforms.
type Clock struct{}

// Open returns an error on non-Linux platforms.
func Open(bus int) (*Clock, error) {
	return nil, errors.New("rtc: not supported on this platform (requires Linux)")
}

// Read is not implemented on non-Linux platforms.
func (c *Clock) Read() (timeval.Time, error) {
	return timeval.Time{}, errors.New("rtc: not supported")
}

// Write is not implemented on non-Linux platforms.
func (c *Clock) Write(t timeval.Time) error {
	return errors.New("rtc: not supported")
}

// Close is a no-op on non-Linux platforms.
func (c *Clock) Close() error { return nil }
