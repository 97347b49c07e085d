// Command bedside-clock runs an alarm clock on GPIO buttons, a piezo buzzer
// and a 16x2 I2C display.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/loggo"
	"golang.org/x/sync/errgroup"

	"github.com/sweeney/bedside-clock/internal/button"
	"github.com/sweeney/bedside-clock/internal/device"
	"github.com/sweeney/bedside-clock/internal/display"
	"github.com/sweeney/bedside-clock/internal/hwio"
	"github.com/sweeney/bedside-clock/internal/rtc"
	"github.com/sweeney/bedside-clock/internal/status"
)

var logger = loggo.GetLogger("bedside-clock")

func main() {
	fastTick := flag.Duration("fast-tick", 10*time.Millisecond, "Housekeeping tick interval (button sampling, countdowns)")
	poll := flag.Duration("poll", 25*time.Millisecond, "Foreground poll interval (switch, press dispatch, display)")
	longPress := flag.Duration("long-press", time.Second, "Hold duration that counts as a long press")
	backlight := flag.Duration("backlight", 5*time.Second, "Backlight timeout after a press")
	beep := flag.Duration("beep", 100*time.Millisecond, "Length of the acknowledgment beep")
	ringPhase := flag.Duration("ring-phase", 500*time.Millisecond, "Length of one ring pattern phase")
	snoozeMin := flag.Int("snooze-min", 5, "Minutes added per snooze press")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat log interval (0 to disable)")
	blink := flag.Duration("blink", 500*time.Millisecond, "Blink period of the field being edited")

	gpioChip := flag.String("gpio-chip", "gpiochip0", "GPIO character device name")
	pinSetAlarm := flag.Int("pin-set-alarm", hwio.DefaultPinSetAlarm, "BCM pin of the set-alarm button")
	pinSetClock := flag.Int("pin-set-clock", hwio.DefaultPinSetClock, "BCM pin of the set-clock button")
	pinUp := flag.Int("pin-up", hwio.DefaultPinUp, "BCM pin of the up button")
	pinDown := flag.Int("pin-down", hwio.DefaultPinDown, "BCM pin of the down button")
	pinMode := flag.Int("pin-mode", hwio.DefaultPinMode, "BCM pin of the mode button")
	pinSnooze := flag.Int("pin-snooze", hwio.DefaultPinSnooze, "BCM pin of the snooze button")
	pinStop := flag.Int("pin-stop", hwio.DefaultPinStopAlarm, "BCM pin of the stop-alarm button")
	pinSwitch := flag.Int("pin-switch", hwio.DefaultPinSwitch, "BCM pin of the alarm on/off switch")
	pinLight := flag.Int("pin-light", hwio.DefaultPinLight, "BCM pin of the backlight output")
	pwmChip := flag.String("pwm-chip", "/sys/class/pwm/pwmchip0", "sysfs path of the buzzer PWM chip")
	pwmChannel := flag.Int("pwm-channel", 0, "PWM channel of the buzzer")

	useDisplay := flag.Bool("display", true, "Drive the I2C display")
	displayBus := flag.Int("display-bus", display.DefaultBus, "I2C bus of the display")
	displayAddr := flag.Int("display-addr", display.DefaultAddr, "I2C address of the display")
	useRTC := flag.Bool("rtc", true, "Seed and persist the clock via a DS1307 RTC")
	rtcBus := flag.Int("rtc-bus", rtc.DefaultBus, "I2C bus of the RTC")

	logSpec := flag.String("log", "<root>=INFO", "loggo logger specification")

	flag.Parse()

	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log spec: %v\n", err)
		os.Exit(2)
	}

	cfg := runConfig{
		fastTick:  *fastTick,
		poll:      *poll,
		longPress: *longPress,
		heartbeat: *heartbeat,
		blink:     *blink,
		device: device.Config{
			BacklightTicks:   ticks(*backlight, *fastTick),
			BuzzerShortTicks: ticks(*beep, *fastTick),
			BuzzerLongTicks:  ticks(*ringPhase, *fastTick),
			SnoozeMinutes:    *snoozeMin,
		},
		gpioChip: *gpioChip,
		pins: hwio.Pins{
			Buttons: [hwio.NumButtons]int{
				hwio.SetAlarm:  *pinSetAlarm,
				hwio.SetClock:  *pinSetClock,
				hwio.Up:        *pinUp,
				hwio.Down:      *pinDown,
				hwio.Mode:      *pinMode,
				hwio.Snooze:    *pinSnooze,
				hwio.StopAlarm: *pinStop,
			},
			Switch: *pinSwitch,
			Light:  *pinLight,
		},
		pwmChip:     *pwmChip,
		pwmChannel:  *pwmChannel,
		useDisplay:  *useDisplay,
		displayBus:  *displayBus,
		displayAddr: uint8(*displayAddr),
		useRTC:      *useRTC,
		rtcBus:      *rtcBus,
	}

	if err := run(cfg); err != nil {
		logger.Criticalf("fatal: %v", err)
		os.Exit(1)
	}
}

type runConfig struct {
	fastTick  time.Duration
	poll      time.Duration
	longPress time.Duration
	heartbeat time.Duration
	blink     time.Duration
	device    device.Config

	gpioChip   string
	pins       hwio.Pins
	pwmChip    string
	pwmChannel int

	useDisplay  bool
	displayBus  int
	displayAddr uint8
	useRTC      bool
	rtcBus      int
}

// ticks converts a duration into fast-tick counts, at least one.
func ticks(d, tick time.Duration) int {
	if tick <= 0 {
		return 1
	}
	n := int(d / tick)
	if n < 1 {
		n = 1
	}
	return n
}

func run(cfg runConfig) error {
	tone := hwio.NewTone(cfg.pwmChip, cfg.pwmChannel)
	io, err := hwio.NewReal(cfg.gpioChip, cfg.pins, tone)
	if err != nil {
		return fmt.Errorf("init hardware: %w", err)
	}
	defer io.Close()

	dev := device.New(io, cfg.device)
	tracker := status.NewTracker(time.Now())

	var clock *rtc.Clock
	if cfg.useRTC {
		clock, err = rtc.Open(cfg.rtcBus)
		if err != nil {
			logger.Warningf("rtc unavailable, clock starts at 00:00:00: %v", err)
		} else {
			defer clock.Close()
			switch t, err := clock.Read(); {
			case errors.Is(err, rtc.ErrHalted):
				logger.Warningf("rtc holds no time yet, set the clock to start it")
			case err != nil:
				logger.Warningf("rtc read failed: %v", err)
			default:
				dev.SetClock(t)
				logger.Infof("clock seeded from rtc: %s", t)
			}
		}
	}

	var screen *display.Screen
	if cfg.useDisplay {
		screen, err = display.NewScreen(cfg.displayBus, cfg.displayAddr)
		if err != nil {
			return fmt.Errorf("init display: %w", err)
		}
		defer screen.Close()
	}

	sampler := button.NewSampler(ticks(cfg.longPress, cfg.fastTick))
	wireButtons(sampler, dev, tracker, clock)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("started: fast-tick=%v long-press=%v snooze=%dm",
		cfg.fastTick, cfg.longPress, cfg.device.SnoozeMinutes)

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()
	fastTicker := time.NewTicker(cfg.fastTick)
	defer fastTicker.Stop()
	pollTicker := time.NewTicker(cfg.poll)
	defer pollTicker.Stop()

	err = runLoops(ctx, loops{
		dev:       dev,
		sampler:   sampler,
		inputs:    io,
		tracker:   tracker,
		screen:    screen,
		heartbeat: cfg.heartbeat,
		blink:     cfg.blink,
		now:       time.Now,
		secTick:   secTicker.C,
		fastTick:  fastTicker.C,
		pollTick:  pollTicker.C,
	})
	logger.Infof("shutting down")
	return err
}

// wireButtons registers the fixed listener set: the generic press listener
// first, then the per-button listeners.
func wireButtons(s *button.Sampler, dev *device.Device, tracker *status.Tracker, clock *rtc.Clock) {
	s.OnAnyPress(func() {
		tracker.CountPress()
		dev.PressAny()
	})

	s.OnPress(hwio.SetAlarm, dev.PressSetAlarm)
	s.OnLongPress(hwio.SetAlarm, dev.LongSetAlarm)
	s.OnPress(hwio.SetClock, func() {
		if !dev.PressSetClock() {
			return
		}
		t := dev.Snapshot().Clock
		logger.Infof("clock set to %s", t)
		if clock == nil {
			return
		}
		if err := clock.Write(t); err != nil {
			logger.Warningf("rtc write failed: %v", err)
		}
	})
	s.OnLongPress(hwio.SetClock, dev.LongSetClock)
	s.OnPress(hwio.Up, dev.PressUp)
	s.OnPress(hwio.Down, dev.PressDown)
	s.OnPress(hwio.Mode, dev.PressMode)
	s.OnPress(hwio.Snooze, func() {
		if dev.PressSnooze() {
			tracker.CountSnooze()
			logger.Infof("snoozed until %s", dev.Snapshot().Snooze.HM())
		}
	})
	s.OnPress(hwio.StopAlarm, func() {
		if dev.PressStopAlarm() {
			tracker.CountSilence()
			logger.Infof("alarm silenced")
		}
	})
}

// inputSource is the slice of hwio.Inputs the loops need.
type inputSource interface {
	Buttons() (hwio.Levels, error)
	Switch() (bool, error)
}

type loops struct {
	dev       *device.Device
	sampler   *button.Sampler
	inputs    inputSource
	tracker   *status.Tracker
	screen    *display.Screen
	heartbeat time.Duration
	blink     time.Duration
	now       func() time.Time

	secTick  <-chan time.Time
	fastTick <-chan time.Time
	pollTick <-chan time.Time
}

// runLoops runs the three periodic sources until ctx is done: the seconds
// tick, the fast housekeeping tick, and the foreground poll.
func runLoops(ctx context.Context, l loops) error {
	g, ctx := errgroup.WithContext(ctx)

	// Seconds source: advance the clock, evaluate alarm match.
	g.Go(func() error {
		switchOn := false
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-l.secTick:
				on, err := l.inputs.Switch()
				if err != nil {
					logger.Warningf("switch read error: %v", err)
					on = switchOn // keep the last known level
				}
				switchOn = on

				if l.dev.TickSecond(switchOn) {
					l.tracker.CountRing()
					logger.Infof("alarm ringing at %s", l.dev.Snapshot().Clock)
				}
			}
		}
	})

	// Fast source: sample buttons, advance countdowns.
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-l.fastTick:
				levels, err := l.inputs.Buttons()
				if err != nil {
					logger.Warningf("button read error: %v", err)
				} else {
					l.sampler.Sample(levels)
				}
				l.dev.TickFast()
			}
		}
	})

	// Foreground loop: switch-off silencing, press dispatch, display,
	// heartbeat.
	g.Go(func() error {
		start := l.now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-l.pollTick:
				if on, err := l.inputs.Switch(); err == nil && !on {
					if l.dev.SwitchOff() {
						l.tracker.CountSilence()
						logger.Infof("alarm switched off")
					}
				}

				l.sampler.Dispatch()

				now := l.now()
				if hb := l.tracker.CheckHeartbeat(now, l.heartbeat); hb != nil {
					logger.Infof("heartbeat: uptime=%v rings=%d snoozes=%d silences=%d presses=%d",
						hb.Uptime().Round(time.Second), hb.Counts.Rings,
						hb.Counts.Snoozes, hb.Counts.Silences, hb.Counts.Presses)
				}

				if l.screen != nil {
					blink := l.blink > 0 && (now.Sub(start)/l.blink)%2 == 1
					if err := l.screen.Update(l.dev.Snapshot(), blink); err != nil {
						logger.Warningf("display update failed: %v", err)
					}
				}
			}
		}
	})

	return g.Wait()
}
