//go:build !linux

package hwio

import "errors"

// Real is not available on non-Linux platforms.
type Real struct{}

// NewReal returns an error on non-Linux platforms.
func NewReal(chipName string, pins Pins, tone *Tone) (*Real, error) {
	return nil, errors.New("hwio: not supported on this platform (requires Linux)")
}

// Buttons is not implemented on non-Linux platforms.
func (r *Real) Buttons() (Levels, error) {
	return Levels{}, errors.New("hwio: not supported")
}

// Switch is not implemented on non-Linux platforms.
func (r *Real) Switch() (bool, error) {
	return false, errors.New("hwio: not supported")
}

// SetIllumination is a no-op on non-Linux platforms.
func (r *Real) SetIllumination(on bool) {}

// SetBuzzerPulse is a no-op on non-Linux platforms.
func (r *Real) SetBuzzerPulse(on bool) {}

// Close is a no-op on non-Linux platforms.
func (r *Real) Close() error { return nil }
