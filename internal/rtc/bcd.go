// Package rtc reads and sets a DS1307 real-time clock over I2C, so the wall
// time survives a power cycle. The chip always runs in 24-hour mode here;
// display-mode conversion is the device core's business.
package rtc

import "fmt"

// The DS1307 stores every field as binary-coded decimal.

func toBCD(n int) byte {
	return byte(n/10<<4 | n%10)
}

func fromBCD(b byte) (int, error) {
	hi := int(b >> 4)
	lo := int(b & 0x0f)
	if hi > 9 || lo > 9 {
		return 0, fmt.Errorf("invalid BCD byte %#02x", b)
	}
	return hi*10 + lo, nil
}
