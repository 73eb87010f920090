package board

import (
	"testing"
	"time"
)

func TestStatus(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil {
		t.Fatalf("failed to load %s: %v", DefaultTimezone, err)
	}
	now := time.Date(2026, 10, 15, 14, 3, 0, 0, loc)

	tests := []struct {
		name   string
		offset time.Duration
		want   string
	}{
		{"exactly now", 0, "<1 min"},
		{"59 seconds", 59 * time.Second, "<1 min"},
		{"half a minute ago", -30 * time.Second, "DEPARTED"},
		{"one minute ago", -1 * time.Minute, "DEPARTED"},
		{"one minute", 1 * time.Minute, "(1 min)"},
		{"ten minutes", 10 * time.Minute, "(10 min)"},
		{"just under eleven", 10*time.Minute + 59*time.Second, "(10 min)"},
		{"eleven minutes", 11 * time.Minute, "14:14"},
		{"next hour", 2 * time.Hour, "16:03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Status(now.Add(tt.offset), now, loc)
			if got != tt.want {
				t.Errorf("Status(now%+v) = %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestStatus_ClockUsesLocation(t *testing.T) {
	loc, err := LoadLocation("Europe/Prague")
	if err != nil {
		t.Fatalf("failed to load Europe/Prague: %v", err)
	}

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	predicted := now.Add(30 * time.Minute)

	// CEST is UTC+2 in October before the switch
	if got := Status(predicted, now, loc); got != "14:30" {
		t.Errorf("expected Prague clock time 14:30, got %q", got)
	}
}

func TestMinutesUntil_Floors(t *testing.T) {
	now := time.Now()

	if got := MinutesUntil(now.Add(-1*time.Millisecond), now); got != -1 {
		t.Errorf("expected -1 for a departure 1ms ago, got %d", got)
	}
	if got := MinutesUntil(now.Add(119*time.Second), now); got != 1 {
		t.Errorf("expected 1 for 119s ahead, got %d", got)
	}
}
