package device

import (
	"github.com/sweeney/bedside-clock/internal/countdown"
	"github.com/sweeney/bedside-clock/internal/hwio"
)

// backlightController keeps the display lit for a fixed number of fast
// ticks after a press. Every press re-arms the countdown, so presses in
// quick succession keep the light on continuously. Not synchronized; the
// Device drives it under its own lock.
type backlightController struct {
	ticks int
	out   hwio.Outputs

	timer countdown.Timer
}

// turnOn lights the display and starts (or refreshes) the timeout.
func (b *backlightController) turnOn() {
	b.out.SetIllumination(true)
	b.timer.Arm(b.ticks)
}

// tick advances the countdown; on expiry the light goes out, exactly once.
func (b *backlightController) tick() {
	if b.timer.Tick() {
		b.out.SetIllumination(false)
	}
}
