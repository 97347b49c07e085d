package hwio

import (
	"errors"
	"sync"
)

// FakeInputs is a test double that returns scripted input samples.
type FakeInputs struct {
	// Samples contains scripted input frames. Each call to Buttons
	// consumes the next frame; Switch reads the current frame without
	// consuming it. When samples are exhausted the last frame repeats.
	Samples []Frame

	// ReadError, if set, is returned by Buttons and Switch.
	ReadError error

	index  int
	Closed bool
}

// Frame is a single input sample: every button level plus the switch.
type Frame struct {
	Pressed  Levels
	SwitchOn bool
}

// NewFakeInputs creates a FakeInputs with the given frames.
func NewFakeInputs(samples []Frame) *FakeInputs {
	return &FakeInputs{Samples: samples}
}

// Buttons returns the next scripted frame's button levels.
func (f *FakeInputs) Buttons() (Levels, error) {
	if f.ReadError != nil {
		return Levels{}, f.ReadError
	}
	if len(f.Samples) == 0 {
		return Levels{}, errors.New("no samples configured")
	}

	frame := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return frame.Pressed, nil
}

// Switch returns the switch level of the current frame.
func (f *FakeInputs) Switch() (bool, error) {
	if f.ReadError != nil {
		return false, f.ReadError
	}
	if len(f.Samples) == 0 {
		return false, errors.New("no samples configured")
	}
	return f.Samples[f.index].SwitchOn, nil
}

// Close marks the inputs as closed.
func (f *FakeInputs) Close() error {
	f.Closed = true
	return nil
}

// Reset rewinds the script.
func (f *FakeInputs) Reset() {
	f.index = 0
	f.Closed = false
}

// FakeOutputs records every output transition for assertions.
type FakeOutputs struct {
	mu sync.Mutex

	// Current levels.
	Illumination bool
	Pulse        bool

	// Transition traces, one entry per state change (repeated writes of the
	// same level are not recorded, mirroring what the hardware would show).
	IlluminationTrace []bool
	PulseTrace        []bool

	Closed bool
}

// NewFakeOutputs creates an all-off FakeOutputs.
func NewFakeOutputs() *FakeOutputs {
	return &FakeOutputs{}
}

// SetIllumination records an illumination change.
func (f *FakeOutputs) SetIllumination(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Illumination != on {
		f.Illumination = on
		f.IlluminationTrace = append(f.IlluminationTrace, on)
	}
}

// SetBuzzerPulse records a pulse-gate change.
func (f *FakeOutputs) SetBuzzerPulse(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Pulse != on {
		f.Pulse = on
		f.PulseTrace = append(f.PulseTrace, on)
	}
}

// Close forces both outputs off.
func (f *FakeOutputs) Close() error {
	f.SetIllumination(false)
	f.SetBuzzerPulse(false)
	f.mu.Lock()
	f.Closed = true
	f.mu.Unlock()
	return nil
}

// Levels returns the current output levels.
func (f *FakeOutputs) Levels() (illumination, pulse bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Illumination, f.Pulse
}
