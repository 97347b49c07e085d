// Package countdown provides the tick-driven timer used for the backlight
// and buzzer timeouts. A Timer is either off or counting a number of ticks;
// durations are tick counts, not wall-clock time, so the effective length
// depends on the cadence of the source driving Tick.
package countdown

// Timer counts down a number of ticks and reports expiry exactly once.
// The zero value is an off timer. Timer is not synchronized; the owner
// serializes access.
type Timer struct {
	counting bool
	left     int
}

// Arm starts (or restarts) the timer with n ticks. n <= 0 arms a timer that
// expires on the next tick.
func (t *Timer) Arm(n int) {
	t.counting = true
	if n < 0 {
		n = 0
	}
	t.left = n
}

// Disarm stops the timer without expiring it.
func (t *Timer) Disarm() {
	t.counting = false
	t.left = 0
}

// Active reports whether the timer is counting.
func (t *Timer) Active() bool {
	return t.counting
}

// Exhausted reports whether the timer is off or about to expire. Arming on
// an exhausted timer starts a fresh period; arming on a non-exhausted timer
// would cut the running period short.
func (t *Timer) Exhausted() bool {
	return !t.counting || t.left == 0
}

// Tick advances the timer by one tick. It returns true exactly once per
// armed period, on the tick after the count reaches zero, and turns the
// timer off; the caller re-arms if the timeout repeats.
func (t *Timer) Tick() bool {
	if !t.counting {
		return false
	}
	if t.left > 0 {
		t.left--
		return false
	}
	t.counting = false
	return true
}
