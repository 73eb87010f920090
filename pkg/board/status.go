// Package board turns Golemio departure records into the rows of a
// departure board and keeps a render sink refreshed with them.
package board

import (
	"math"
	"strconv"
	"time"
	// Europe/Prague must resolve on hosts without a zoneinfo database
	_ "time/tzdata"
)

const (
	// RefreshInterval is the fixed polling period of the board.
	RefreshInterval = 5 * time.Second

	// DefaultTimezone is the zone clock times are shown in.
	DefaultTimezone = "Europe/Prague"

	StatusDeparted = "DEPARTED"
	StatusImminent = "<1 min"

	// NoDeparturesNotice replaces the board when the stop has nothing upcoming.
	NoDeparturesNotice = "No upcoming departures found."

	// Departures further away than this are shown as a clock time.
	countdownMinutes = 10
)

// MinutesUntil returns floor((predicted - now) / 1 minute).
func MinutesUntil(predicted, now time.Time) int {
	return int(math.Floor(predicted.Sub(now).Minutes()))
}

// Status buckets a predicted departure relative to now:
//
//	< 0 min   DEPARTED
//	0 min     <1 min
//	1-10 min  (N min)
//	> 10 min  HH:MM in loc
func Status(predicted, now time.Time, loc *time.Location) string {
	mins := MinutesUntil(predicted, now)

	switch {
	case mins < 0:
		return StatusDeparted
	case mins < 1:
		return StatusImminent
	case mins <= countdownMinutes:
		return "(" + strconv.Itoa(mins) + " min)"
	}

	if loc == nil {
		loc = time.Local
	}
	return predicted.In(loc).Format("15:04")
}

// LoadLocation resolves a zone name, falling back to DefaultTimezone when
// name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}
