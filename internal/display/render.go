// Package display renders device snapshots on a 16x2 character LCD
// (ST7032 class, I2C). Rendering is split from the bus driver so layouts
// are testable without hardware.
package display

import (
	"fmt"

	"github.com/sweeney/bedside-clock/internal/device"
	"github.com/sweeney/bedside-clock/internal/timeval"
)

// Width is the character width of one display row.
const Width = 16

// Render formats a snapshot into the two display rows, each exactly Width
// characters. blink alternates on successive refreshes; the field being
// edited is blanked on the blink phase so the user can see which one is
// selected.
func Render(s device.Snapshot, blink bool) (row1, row2 string) {
	hh := fmt.Sprintf("%02d", s.Clock.Hour)
	mm := fmt.Sprintf("%02d", s.Clock.Minute)
	if blink {
		switch s.State {
		case device.SetClockHour:
			hh = "  "
		case device.SetClockMinute:
			mm = "  "
		}
	}
	row1 = fmt.Sprintf("%s:%s:%02d     %s", hh, mm, s.Clock.Second, modeTag(s.Mode))

	switch s.State {
	case device.Ring:
		row2 = center("WAKE UP!")
	case device.SetAlarmHour, device.SetAlarmMinute:
		ah := fmt.Sprintf("%02d", s.Alarm.Hour)
		am := fmt.Sprintf("%02d", s.Alarm.Minute)
		if blink {
			if s.State == device.SetAlarmHour {
				ah = "  "
			} else {
				am = "  "
			}
		}
		row2 = pad(fmt.Sprintf("A %s:%s", ah, am))
	default:
		tail := ""
		if s.Snoozed {
			tail = "SNZ " + s.Snooze.HM()
		}
		row2 = fmt.Sprintf("A %s%*s", s.Alarm.HM(), Width-7, tail)
	}
	return row1, row2
}

func modeTag(m timeval.Mode) string {
	if m == timeval.H12 {
		return "12H"
	}
	return "24H"
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", Width, s)
}

func center(s string) string {
	left := (Width - len(s)) / 2
	return pad(fmt.Sprintf("%*s%s", left, "", s))
}
