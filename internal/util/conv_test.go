package util

import (
	"testing"
	"time"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 10},
		{"abc", 10},
		{"-3", 10},
		{"5", 5},
		{"500", 50},
	}
	for _, tt := range tests {
		if got := ParseLimit(tt.in, 10, 50); got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDayOfUsesUTC(t *testing.T) {
	tehran := time.FixedZone("IRST", 3*3600+1800)
	// 2024-03-10 01:00 in Tehran is still 2024-03-09 in UTC
	ts := time.Date(2024, 3, 10, 1, 0, 0, 0, tehran)
	if got := DayOf(ts); got != "2024-03-09" {
		t.Errorf("DayOf = %s, want 2024-03-09", got)
	}
}
