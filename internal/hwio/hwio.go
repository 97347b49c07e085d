// Package hwio is the hardware boundary: raw button and switch levels in,
// illumination and buzzer-pulse outputs out. The real implementation uses the
// Linux GPIO character device for lines and a sysfs PWM channel for the
// buzzer tone. The fake implementation allows testing without hardware.
package hwio

// Button identifies a logical button. SetAlarm and SetClock may be wired to
// the same physical line; the core does not care.
type Button int

const (
	SetAlarm Button = iota
	SetClock
	Up
	Down
	Mode
	Snooze
	StopAlarm

	NumButtons int = iota
)

var buttonNames = [NumButtons]string{
	"SET_ALARM", "SET_CLOCK", "UP", "DOWN", "MODE", "SNOOZE", "STOP_ALARM",
}

func (b Button) String() string {
	if b < 0 || int(b) >= NumButtons {
		return "UNKNOWN"
	}
	return buttonNames[b]
}

// Levels holds one sample of every button, true = pressed.
type Levels [NumButtons]bool

// Inputs reads raw input levels. Buttons and the switch are sampled, not
// edge-driven; debouncing happens below this interface.
type Inputs interface {
	// Buttons returns the logical pressed state of every button.
	// Raw lines are active-low; implementations return the inverted level.
	Buttons() (Levels, error)

	// Switch returns true while the alarm on/off switch is set to on.
	Switch() (bool, error)

	// Close releases input resources.
	Close() error
}

// Outputs drives the illumination and buzzer-pulse lines. Calls are
// best-effort: output faults cannot be handled meaningfully mid-tick, so
// implementations swallow write errors rather than failing the caller.
type Outputs interface {
	// SetIllumination switches the display backlight.
	SetIllumination(on bool)

	// SetBuzzerPulse gates the audio-frequency pulse source. While true the
	// buzzer sounds continuously; the intermittent ring pattern is produced
	// by the caller toggling this gate.
	SetBuzzerPulse(on bool)

	// Close forces both outputs off and releases resources.
	Close() error
}

// Default pin assignments (BCM numbering).
const (
	DefaultPinSetAlarm  = 5
	DefaultPinSetClock  = 6
	DefaultPinUp        = 13
	DefaultPinDown      = 19
	DefaultPinMode      = 20
	DefaultPinSnooze    = 21
	DefaultPinStopAlarm = 26
	DefaultPinSwitch    = 4
	DefaultPinLight     = 12
)

// Pins maps every input line and the illumination output to a BCM pin.
type Pins struct {
	Buttons [NumButtons]int
	Switch  int
	Light   int
}

// DefaultPins returns the wiring used by the reference hardware.
func DefaultPins() Pins {
	return Pins{
		Buttons: [NumButtons]int{
			SetAlarm:  DefaultPinSetAlarm,
			SetClock:  DefaultPinSetClock,
			Up:        DefaultPinUp,
			Down:      DefaultPinDown,
			Mode:      DefaultPinMode,
			Snooze:    DefaultPinSnooze,
			StopAlarm: DefaultPinStopAlarm,
		},
		Switch: DefaultPinSwitch,
		Light:  DefaultPinLight,
	}
}
