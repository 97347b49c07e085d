package hwio

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Default tone parameters: ~2068 Hz square wave at 50% duty.
const (
	defaultPeriodNs = 483558
	defaultDutyNs   = 241779
)

// Tone is the audio-frequency pulse source: a Linux sysfs PWM channel
// driving the piezo buzzer. Enabling the channel sounds the buzzer
// continuously; the ring pattern is made by gating it on and off.
type Tone struct {
	base     string // e.g. /sys/class/pwm/pwmchip0
	channel  string // e.g. "0"
	periodNs int
	dutyNs   int

	exported bool
}

// NewTone returns a Tone on the given pwmchip sysfs path and channel.
func NewTone(base string, channel int) *Tone {
	return &Tone{
		base:     base,
		channel:  strconv.Itoa(channel),
		periodNs: defaultPeriodNs,
		dutyNs:   defaultDutyNs,
	}
}

// Setup exports the channel and programs period, duty cycle and polarity.
// Safe to call when the channel is already exported.
func (t *Tone) Setup() error {
	if err := t.ensureExported(); err != nil {
		return err
	}

	if err := writeFile(t.port()+"/period", strconv.Itoa(t.periodNs)); err != nil {
		return err
	}
	if err := writeFile(t.port()+"/duty_cycle", strconv.Itoa(t.dutyNs)); err != nil {
		return err
	}
	if err := writeFile(t.port()+"/polarity", "normal"); err != nil {
		return err
	}

	t.Disable()
	return nil
}

// Enable starts the tone. Best-effort; a failed write unexports the channel
// so the next Setup starts clean.
func (t *Tone) Enable() {
	if !t.exported {
		return
	}
	if err := writeFile(t.port()+"/enable", "1"); err != nil {
		t.unexport()
	}
}

// Disable stops the tone.
func (t *Tone) Disable() {
	if !t.exported {
		return
	}
	if err := writeFile(t.port()+"/enable", "0"); err != nil {
		t.unexport()
	}
}

func (t *Tone) port() string {
	return t.base + "/pwm" + t.channel
}

func (t *Tone) ensureExported() error {
	if t.exported {
		return nil
	}

	// Already exported by a previous run?
	if _, err := os.Stat(t.port()); err == nil {
		t.exported = true
		return nil
	}

	if err := writeFile(t.base+"/export", t.channel); err != nil {
		return fmt.Errorf("export pwm channel: %w", err)
	}
	t.exported = true
	return nil
}

func (t *Tone) unexport() {
	_ = writeFile(t.base+"/unexport", t.channel)
	t.exported = false
}

func writeFile(path, value string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.WriteString(value)
	if err != nil {
		return err
	}
	if n < len(value) {
		return io.ErrShortWrite
	}
	return nil
}
