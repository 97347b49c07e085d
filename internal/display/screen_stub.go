//go:build !linux

package display

import (
	"errors"

	"github.com/sweeney/bedside-clock/internal/device"
)

const (
	DefaultBus  = 1
	DefaultAddr = 0x3e
)

// Screen is not available on non-Linux platforms.
type Screen struct{}

// NewScreen returns an error on non-Linux platforms.
func NewScreen(bus int, addr uint8) (*Screen, error) {
	return nil, errors.New("display: not supported on this platform (requires Linux)")
}

// Update is not implemented on non-Linux platforms.
func (s *Screen) Update(snap device.Snapshot, blink bool) error {
	return errors.New("display: not supported")
}

// Close is a no-op on non-Linux platforms.
func (s *Screen) Close() error { return nil }
