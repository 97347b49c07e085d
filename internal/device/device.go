// Package device holds the clock core: the mode state machine, the clock,
// alarm and snooze values, and the buzzer and backlight timing. All of it is
// shared between the periodic tick sources and the foreground loop, so every
// entry point runs as a critical section under one mutex; side effects reach
// the hardware only through hwio.Outputs.
package device

import (
	"sync"

	"github.com/sweeney/bedside-clock/internal/hwio"
	"github.com/sweeney/bedside-clock/internal/timeval"
)

// State is the device operating mode.
type State string

const (
	// Idle shows the clock and waits for the alarm to match.
	Idle State = "IDLE"
	// SetAlarmHour and SetAlarmMinute edit the alarm value.
	SetAlarmHour   State = "SET_ALARM_HOUR"
	SetAlarmMinute State = "SET_ALARM_MINUTE"
	// SetClockHour and SetClockMinute edit the clock value.
	SetClockHour   State = "SET_CLOCK_HOUR"
	SetClockMinute State = "SET_CLOCK_MINUTE"
	// Ring sounds the alarm until silenced or snoozed.
	Ring State = "RING"
)

// Config holds the tick-count durations and the snooze offset.
// All counts are in fast ticks.
type Config struct {
	// BacklightTicks is how long the backlight stays on after a press.
	BacklightTicks int
	// BuzzerShortTicks is the length of the acknowledgment beep.
	BuzzerShortTicks int
	// BuzzerLongTicks is the length of one ring pattern phase.
	BuzzerLongTicks int
	// SnoozeMinutes is added to the alarm (then to the snooze time) on
	// every snooze press.
	SnoozeMinutes int
}

// DefaultConfig returns durations for a 10ms fast tick: 5s backlight,
// 100ms beep, 500ms ring phase, 5 minute snooze.
func DefaultConfig() Config {
	return Config{
		BacklightTicks:   500,
		BuzzerShortTicks: 10,
		BuzzerLongTicks:  50,
		SnoozeMinutes:    5,
	}
}

// Snapshot is a point-in-time copy of the displayable state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	State   State
	Mode    timeval.Mode
	Clock   timeval.Time
	Alarm   timeval.Time
	Snooze  timeval.Time
	Snoozed bool
}

// Device is the core. Created once at startup; every method is safe to call
// from any goroutine.
type Device struct {
	mu  sync.Mutex
	out hwio.Outputs
	cfg Config

	state   State
	mode    timeval.Mode
	clock   timeval.Time
	alarm   timeval.Time
	snooze  timeval.Time
	snoozed bool

	buzzer    buzzerController
	backlight backlightController
}

// New creates a Device in the power-up state: 00:00:00, alarm 00:00:00,
// idle, 24-hour mode, not snoozed.
func New(out hwio.Outputs, cfg Config) *Device {
	return &Device{
		out:   out,
		cfg:   cfg,
		state: Idle,
		mode:  timeval.H24,
		buzzer: buzzerController{
			shortTicks: cfg.BuzzerShortTicks,
			longTicks:  cfg.BuzzerLongTicks,
			out:        out,
		},
		backlight: backlightController{
			ticks: cfg.BacklightTicks,
			out:   out,
		},
	}
}

// TickSecond advances the clock by one second and, while idle with the
// switch on, checks the alarm (or, once snoozed, the snooze time) against
// the clock. It reports whether ringing started on this tick.
func (d *Device) TickSecond(switchOn bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clock = d.clock.Tick(d.mode)

	if !switchOn || d.state != Idle {
		return false
	}

	target := d.alarm
	if d.snoozed {
		// Once snoozed, only the snooze time is checked, so editing the
		// alarm afterwards cannot retrigger early.
		target = d.snooze
	}
	if d.clock != target {
		return false
	}

	d.state = Ring
	d.buzzer.start(true)
	return true
}

// TickFast advances the backlight and buzzer countdowns by one fast tick.
func (d *Device) TickFast() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.backlight.tick()
	d.buzzer.tick(d.state == Ring)
}

// PressAny is the generic short-press listener, fired for every button:
// light the display and sound a short beep (which never restarts an
// in-progress ring pattern).
func (d *Device) PressAny() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.backlight.turnOn()
	d.buzzer.start(d.state == Ring)
}

// PressSetAlarm steps through the alarm-setting states: hour, then minute,
// then back to idle with the edited value live.
func (d *Device) PressSetAlarm() {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case SetAlarmHour:
		d.state = SetAlarmMinute
	case SetAlarmMinute:
		d.state = Idle
	}
}

// LongSetAlarm enters alarm setting from idle.
func (d *Device) LongSetAlarm() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Idle {
		d.state = SetAlarmHour
	}
}

// PressSetClock steps through the clock-setting states. It reports whether
// this press committed the clock (left SetClockMinute), so the caller can
// persist the new time.
func (d *Device) PressSetClock() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case SetClockHour:
		d.state = SetClockMinute
	case SetClockMinute:
		d.state = Idle
		return true
	}
	return false
}

// LongSetClock enters clock setting from idle.
func (d *Device) LongSetClock() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Idle {
		d.state = SetClockHour
	}
}

// PressUp increments the field being edited.
func (d *Device) PressUp() {
	d.adjust(1)
}

// PressDown decrements the field being edited.
func (d *Device) PressDown() {
	d.adjust(-1)
}

func (d *Device) adjust(delta int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case SetAlarmHour:
		d.alarm = d.alarm.AddHours(delta, d.mode)
	case SetAlarmMinute:
		d.alarm = d.alarm.AddMinutes(delta, d.mode)
	case SetClockHour:
		d.clock = d.clock.AddHours(delta, d.mode)
	case SetClockMinute:
		d.clock = d.clock.AddMinutes(delta, d.mode)
	}
}

// PressMode toggles between 12-hour and 24-hour display, folding the stored
// values into the new hour range. It works in every state.
func (d *Device) PressMode() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode == timeval.H12 {
		d.mode = timeval.H24
	} else {
		d.mode = timeval.H12
	}
	d.clock = d.clock.Convert(d.mode)
	d.alarm = d.alarm.Convert(d.mode)
	d.snooze = d.snooze.Convert(d.mode)
}

// PressSnooze postpones a ringing alarm: the first press seeds the snooze
// time from the alarm plus the offset, later presses push the snooze time
// further. Ringing stops on the next countdown expiry (the state is no
// longer Ring, so the pattern disarms itself). Reports whether the press
// snoozed anything.
func (d *Device) PressSnooze() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Ring {
		return false
	}

	if !d.snoozed {
		d.snoozed = true
		d.snooze = d.alarm.AddMinutes(d.cfg.SnoozeMinutes, d.mode)
	} else {
		d.snooze = d.snooze.AddMinutes(d.cfg.SnoozeMinutes, d.mode)
	}
	d.state = Idle
	return true
}

// PressStopAlarm silences a ringing alarm and clears the snoozed flag.
// Reports whether the press silenced anything.
func (d *Device) PressStopAlarm() bool {
	return d.silence()
}

// SwitchOff reacts to the alarm switch being turned off: identical to a
// stop press. Idempotent, safe to call on every poll while the switch is
// off. Reports whether it silenced anything.
func (d *Device) SwitchOff() bool {
	return d.silence()
}

func (d *Device) silence() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Ring {
		return false
	}

	d.state = Idle
	d.snoozed = false
	d.buzzer.stop()
	return true
}

// SetClock overwrites the clock value, e.g. from an RTC at startup.
func (d *Device) SetClock(t timeval.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clock = t.Convert(d.mode)
}

// Snapshot returns a copy of the displayable state.
func (d *Device) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Snapshot{
		State:   d.state,
		Mode:    d.mode,
		Clock:   d.clock,
		Alarm:   d.alarm,
		Snooze:  d.snooze,
		Snoozed: d.snoozed,
	}
}
