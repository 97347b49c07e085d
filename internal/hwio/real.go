//go:build linux

package hwio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Real drives actual hardware: buttons and switch on GPIO input lines,
// illumination on a GPIO output line, and the buzzer tone on a PWM channel.
// It implements both Inputs and Outputs.
type Real struct {
	chip    *gpiocdev.Chip
	buttons [NumButtons]*gpiocdev.Line
	sw      *gpiocdev.Line
	light   *gpiocdev.Line
	tone    *Tone
}

// NewReal opens all lines on the named GPIO chip and prepares the tone
// source. Buttons and the switch are requested with pull-ups: lines idle
// high and the contacts pull them to ground.
func NewReal(chipName string, pins Pins, tone *Tone) (*Real, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	r := &Real{chip: chip, tone: tone}
	ok := false
	defer func() {
		if !ok {
			r.Close()
		}
	}()

	for b := 0; b < NumButtons; b++ {
		line, err := chip.RequestLine(pins.Buttons[b], gpiocdev.AsInput, gpiocdev.WithPullUp)
		if err != nil {
			return nil, fmt.Errorf("request %s pin %d: %w", Button(b), pins.Buttons[b], err)
		}
		r.buttons[b] = line
	}

	r.sw, err = chip.RequestLine(pins.Switch, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		return nil, fmt.Errorf("request switch pin %d: %w", pins.Switch, err)
	}

	r.light, err = chip.RequestLine(pins.Light, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("request light pin %d: %w", pins.Light, err)
	}

	if err := tone.Setup(); err != nil {
		return nil, fmt.Errorf("setup tone: %w", err)
	}

	ok = true
	return r, nil
}

// Buttons returns the logical pressed state of every button.
// Inverts raw levels: raw low (grounded contact) = pressed.
func (r *Real) Buttons() (Levels, error) {
	var levels Levels
	for b := 0; b < NumButtons; b++ {
		raw, err := r.buttons[b].Value()
		if err != nil {
			return Levels{}, fmt.Errorf("read %s: %w", Button(b), err)
		}
		levels[b] = raw == 0
	}
	return levels, nil
}

// Switch returns true while the alarm switch is on (line pulled low).
func (r *Real) Switch() (bool, error) {
	raw, err := r.sw.Value()
	if err != nil {
		return false, fmt.Errorf("read switch: %w", err)
	}
	return raw == 0, nil
}

// SetIllumination switches the backlight line. Best-effort.
func (r *Real) SetIllumination(on bool) {
	v := 0
	if on {
		v = 1
	}
	_ = r.light.SetValue(v)
}

// SetBuzzerPulse gates the PWM tone. Best-effort.
func (r *Real) SetBuzzerPulse(on bool) {
	if on {
		r.tone.Enable()
	} else {
		r.tone.Disable()
	}
}

// Close forces outputs off and releases every line and the chip.
// Input lines are left as inputs with pull-ups, matching boot defaults.
func (r *Real) Close() error {
	var errs []error

	if r.tone != nil {
		r.tone.Disable()
	}
	if r.light != nil {
		_ = r.light.SetValue(0)
		if err := r.light.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close light: %w", err))
		}
	}
	if r.sw != nil {
		if err := r.sw.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close switch: %w", err))
		}
	}
	for b := 0; b < NumButtons; b++ {
		if r.buttons[b] == nil {
			continue
		}
		if err := r.buttons[b].Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", Button(b), err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
