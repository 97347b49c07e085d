package device

import (
	"github.com/sweeney/bedside-clock/internal/countdown"
	"github.com/sweeney/bedside-clock/internal/hwio"
)

// buzzerController produces either a single short acknowledgment beep or,
// while ringing, an intermittent pattern: the pulse gate is held open for
// one phase length, closed for the next, indefinitely until stopped. It is
// not synchronized; the Device drives it under its own lock.
type buzzerController struct {
	shortTicks int
	longTicks  int
	out        hwio.Outputs

	timer   countdown.Timer
	audible bool // current pattern phase while ringing
}

// start opens the pulse gate. While ringing, the countdown is re-armed only
// if it is exhausted, so a button pressed mid-pattern cannot stretch the
// phase; otherwise this is a short beep.
func (b *buzzerController) start(ringing bool) {
	if ringing {
		if b.timer.Exhausted() {
			b.timer.Arm(b.longTicks)
			b.audible = true
		}
	} else {
		b.timer.Arm(b.shortTicks)
	}
	b.out.SetBuzzerPulse(true)
}

// stop closes the pulse gate and drops the countdown.
func (b *buzzerController) stop() {
	b.timer.Disarm()
	b.out.SetBuzzerPulse(false)
}

// tick advances the countdown. On expiry while ringing the pattern phase
// flips and a new phase of the same length begins; on expiry otherwise the
// beep is over and the gate closes for good.
func (b *buzzerController) tick(ringing bool) {
	if !b.timer.Tick() {
		return
	}

	if !ringing {
		b.out.SetBuzzerPulse(false)
		return
	}

	b.audible = !b.audible
	b.timer.Arm(b.longTicks)
	b.out.SetBuzzerPulse(b.audible)
}
