package exporter

import (
	"fmt"
	"io"
	"time"

	"pidboard/pkg/board"

	ics "github.com/arran4/golang-ical"
)

// departureSlot is how long each departure blocks in the calendar
const departureSlot = 5 * time.Minute

// GenerateICS writes one calendar event per upcoming departure on the board
// and returns how many it wrote. Rows that already departed relative to now
// are skipped.
func GenerateICS(b board.Board, now time.Time, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pidboard//departures//EN")

	events := 0
	for i, row := range b.Rows {
		if row.Predicted.IsZero() || row.Predicted.Before(now) {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s-%d@pidboard", row.Predicted.UTC().Format("20060102T150405Z"), row.Line, i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(row.Predicted)
		event.SetEndAt(row.Predicted.Add(departureSlot))
		event.SetSummary(fmt.Sprintf("🚋 %s -> %s", row.Line, row.Destination))
		event.SetLocation(b.StopName)
		event.SetDescription(fmt.Sprintf("Line %s towards %s departs from %s.", row.Line, row.Destination, b.StopName))
		events++
	}

	return events, cal.SerializeTo(w)
}
