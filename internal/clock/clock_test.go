package clock

import (
	"testing"
	"time"
)

func TestToday_UTC(t *testing.T) {
	// 23:30 JST on Jan 1 is 14:30 UTC the same day.
	jst := time.FixedZone("JST", 9*3600)
	c := NewFixed(time.Date(2025, 1, 1, 23, 30, 0, 0, jst))
	if got := c.Today(); got != "2025-01-01" {
		t.Errorf("Today() = %q, want 2025-01-01", got)
	}
}

func TestOffset_ShiftsDate(t *testing.T) {
	c := NewFixed(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	c.SetOffset(3)
	if got := c.Today(); got != "2025-01-04" {
		t.Errorf("Today() with +3 offset = %q, want 2025-01-04", got)
	}
	c.SetOffset(-1)
	if got := c.Today(); got != "2024-12-31" {
		t.Errorf("Today() with -1 offset = %q, want 2024-12-31", got)
	}
}

func TestZeroValue_Usable(t *testing.T) {
	var c Clock
	if c.Now().IsZero() {
		t.Error("zero-value clock returned zero time")
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2025-01-01", "2025-01-01", 0},
		{"2025-01-01", "2025-01-02", 1},
		{"2025-01-02", "2025-01-01", 1},
		{"2025-01-01", "2025-01-08", 7},
		{"2025-01-01", "bogus", 0},
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
