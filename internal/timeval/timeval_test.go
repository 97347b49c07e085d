package timeval

import "testing"

func TestTickCarriesSecondsMinutesHours(t *testing.T) {
	v := Time{Hour: 0, Minute: 0, Second: 58}

	v = v.Tick(H24)
	if v != (Time{0, 0, 59}) {
		t.Fatalf("expected 00:00:59, got %s", v)
	}

	v = v.Tick(H24)
	if v != (Time{0, 1, 0}) {
		t.Fatalf("expected 00:01:00, got %s", v)
	}

	v = Time{Hour: 5, Minute: 59, Second: 59}.Tick(H24)
	if v != (Time{6, 0, 0}) {
		t.Fatalf("expected 06:00:00, got %s", v)
	}
}

func TestHourOfTicksAdvancesOneHour(t *testing.T) {
	v := Time{}
	for i := 0; i < 3600; i++ {
		v = v.Tick(H24)
	}
	if v != (Time{1, 0, 0}) {
		t.Errorf("expected 01:00:00 after 3600 ticks, got %s", v)
	}
}

func TestTickWrapsMidnight24h(t *testing.T) {
	v := Time{Hour: 23, Minute: 59, Second: 59}.Tick(H24)
	if v != (Time{0, 0, 0}) {
		t.Errorf("expected 00:00:00, got %s", v)
	}
}

func TestTickWraps12h(t *testing.T) {
	v := Time{Hour: 12, Minute: 59, Second: 59}.Tick(H12)
	if v != (Time{1, 0, 0}) {
		t.Errorf("expected 01:00:00, got %s", v)
	}
}

func TestAddHoursWraps(t *testing.T) {
	tests := []struct {
		name string
		in   Time
		n    int
		mode Mode
		want int
	}{
		{"24h up", Time{Hour: 22}, 1, H24, 23},
		{"24h up wrap", Time{Hour: 23}, 1, H24, 0},
		{"24h down wrap", Time{Hour: 0}, -1, H24, 23},
		{"12h up wrap", Time{Hour: 12}, 1, H12, 1},
		{"12h down wrap", Time{Hour: 1}, -1, H12, 12},
		{"12h up", Time{Hour: 7}, 1, H12, 8},
		{"24h big step", Time{Hour: 1}, -3, H24, 22},
	}

	for _, tt := range tests {
		got := tt.in.AddHours(tt.n, tt.mode)
		if got.Hour != tt.want {
			t.Errorf("%s: expected hour %d, got %d", tt.name, tt.want, got.Hour)
		}
	}
}

func TestAddMinutesCarriesIntoHour(t *testing.T) {
	v := Time{Hour: 6, Minute: 58}.AddMinutes(5, H24)
	if v != (Time{7, 3, 0}) {
		t.Errorf("expected 07:03:00, got %s", v)
	}

	v = Time{Hour: 0, Minute: 0}.AddMinutes(-1, H24)
	if v != (Time{23, 59, 0}) {
		t.Errorf("expected 23:59:00, got %s", v)
	}

	v = Time{Hour: 12, Minute: 59}.AddMinutes(1, H12)
	if v != (Time{1, 0, 0}) {
		t.Errorf("expected 01:00:00, got %s", v)
	}
}

func TestAddMinutesLeavesSecondsAlone(t *testing.T) {
	v := Time{Hour: 1, Minute: 2, Second: 42}.AddMinutes(5, H24)
	if v.Second != 42 {
		t.Errorf("expected seconds untouched, got %d", v.Second)
	}
}

func TestConvertTo12h(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 12},
		{1, 1},
		{11, 11},
		{12, 12},
		{13, 1},
		{23, 11},
	}

	for _, tt := range tests {
		got := Time{Hour: tt.in}.Convert(H12)
		if got.Hour != tt.want {
			t.Errorf("Convert(H12) hour %d: expected %d, got %d", tt.in, tt.want, got.Hour)
		}
	}
}

func TestConvertTo24hKeepsHour(t *testing.T) {
	v := Time{Hour: 7, Minute: 30}.Convert(H24)
	if v.Hour != 7 {
		t.Errorf("expected hour 7, got %d", v.Hour)
	}
}

func TestFormatting(t *testing.T) {
	v := Time{Hour: 6, Minute: 5, Second: 4}
	if v.String() != "06:05:04" {
		t.Errorf("String: got %q", v.String())
	}
	if v.HM() != "06:05" {
		t.Errorf("HM: got %q", v.HM())
	}
}
