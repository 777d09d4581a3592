package engine

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:05", 545},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, c := range cases {
		if got := ParseClock(c.in); got != c.want {
			t.Errorf("ParseClock(%q) = %d; want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{545, "09:05"},
		{750, "12:30"},
		{1439, "23:59"},
	}
	for _, c := range cases {
		if got := FormatClock(c.in); got != c.want {
			t.Errorf("FormatClock(%d) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 7 {
		if got := ParseClock(FormatClock(m)); got != m {
			t.Fatalf("round trip of %d minutes yielded %d", m, got)
		}
	}
}
