// Package timeval contains the wrapping hour/minute/second value used for the
// clock, the alarm and the snooze time. It is pure arithmetic: no wall clocks,
// no hardware, no locking. Callers synchronize access.
package timeval

import "fmt"

// Mode selects the hour convention: it governs both display and wrap-around.
type Mode string

const (
	// H24 keeps hours in 0..23, wrapping 23 -> 0.
	H24 Mode = "24H"
	// H12 keeps hours in 1..12, wrapping 12 -> 1. There is no meridiem;
	// a value in H12 mode names two instants per day.
	H12 Mode = "12H"
)

// Time is a normalized hour/minute/second value. The hour range depends on
// the Mode passed to the operations below; minute and second are 0..59.
// Time is a value type; compare with ==, copy freely.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// Tick advances the time by one second, carrying into minutes and hours.
// The hour wraps according to m.
func (t Time) Tick(m Mode) Time {
	t.Second++
	if t.Second < 60 {
		return t
	}
	t.Second = 0
	return t.AddMinutes(1, m)
}

// AddMinutes adds n minutes (n may be negative), carrying into the hour.
func (t Time) AddMinutes(n int, m Mode) Time {
	total := t.Minute + n
	t.Minute = mod(total, 60)
	return t.AddHours(floorDiv(total, 60), m)
}

// AddHours adds n hours (n may be negative), wrapping according to m.
func (t Time) AddHours(n int, m Mode) Time {
	switch m {
	case H12:
		t.Hour = mod(t.Hour-1+n, 12) + 1
	default:
		t.Hour = mod(t.Hour+n, 24)
	}
	return t
}

// Convert normalizes the stored hour into the range of m. Converting to H12
// folds 13..23 down by twelve and maps 0 to 12; converting to H24 keeps the
// stored hour, which is already a valid 24-hour value.
func (t Time) Convert(m Mode) Time {
	if m != H12 {
		return t
	}
	switch {
	case t.Hour == 0:
		t.Hour = 12
	case t.Hour > 12:
		t.Hour -= 12
	}
	return t
}

// String formats the time as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// HM formats the time as HH:MM, the layout used for the alarm row.
func (t Time) HM() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// mod is the non-negative remainder of a/b for b > 0.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// floorDiv is the floored quotient of a/b for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
