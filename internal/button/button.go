// Package button turns raw button levels into short-press and long-press
// events. A fast periodic sampler feeds levels in and fires long-press
// listeners while the button is still held; short presses are latched on
// release and dispatched from the foreground loop. Listener registration is
// fixed at startup; dispatch order is registration order and every
// registered listener runs.
package button

import (
	"sync"

	"github.com/sweeney/bedside-clock/internal/hwio"
)

// Handler is a button event listener.
type Handler func()

// Sampler detects presses from periodic level samples. Sample and Dispatch
// may run on different goroutines; the internal counters are guarded, and
// listeners always run outside the lock.
type Sampler struct {
	longThreshold int

	mu        sync.Mutex
	hold      [hwio.NumButtons]int
	longFired [hwio.NumButtons]bool
	latched   [hwio.NumButtons]int

	generic []Handler
	press   [hwio.NumButtons][]Handler
	long    [hwio.NumButtons][]Handler
}

// NewSampler creates a Sampler. longThreshold is the number of consecutive
// pressed samples after which a hold counts as a long press.
func NewSampler(longThreshold int) *Sampler {
	if longThreshold < 1 {
		longThreshold = 1
	}
	return &Sampler{longThreshold: longThreshold}
}

// OnAnyPress registers a listener fired on every short press, before the
// per-button listeners. Not called again after sampling starts.
func (s *Sampler) OnAnyPress(h Handler) {
	s.generic = append(s.generic, h)
}

// OnPress registers a short-press listener for one button.
func (s *Sampler) OnPress(b hwio.Button, h Handler) {
	s.press[b] = append(s.press[b], h)
}

// OnLongPress registers a long-press listener for one button.
func (s *Sampler) OnLongPress(b hwio.Button, h Handler) {
	s.long[b] = append(s.long[b], h)
}

// Sample feeds one frame of button levels, called on every fast tick.
// A long press fires its listeners exactly once per hold, while the button
// is still held. A release before the threshold latches a short press for
// Dispatch; a release after a long press latches nothing.
func (s *Sampler) Sample(levels hwio.Levels) {
	var fire []Handler

	s.mu.Lock()
	for b := 0; b < hwio.NumButtons; b++ {
		if levels[b] {
			s.hold[b]++
			if !s.longFired[b] && s.hold[b] >= s.longThreshold {
				s.longFired[b] = true
				fire = append(fire, s.long[b]...)
			}
			continue
		}

		if s.hold[b] > 0 && !s.longFired[b] {
			s.latched[b]++
		}
		s.hold[b] = 0
		s.longFired[b] = false
	}
	s.mu.Unlock()

	for _, h := range fire {
		h()
	}
}

// Dispatch fires listeners for every short press latched since the previous
// call. For each press the generic listeners run first, then the button's
// own listeners, all in registration order. Called from the foreground loop.
func (s *Sampler) Dispatch() {
	s.mu.Lock()
	latched := s.latched
	s.latched = [hwio.NumButtons]int{}
	s.mu.Unlock()

	for b := 0; b < hwio.NumButtons; b++ {
		for n := 0; n < latched[b]; n++ {
			for _, h := range s.generic {
				h()
			}
			for _, h := range s.press[b] {
				h()
			}
		}
	}
}
