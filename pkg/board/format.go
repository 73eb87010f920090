package board

import (
	"time"

	"pidboard/pkg/golemio"
)

// Row is one formatted line of the departure board
type Row struct {
	Line        string
	Destination string
	Status      string
	Predicted   time.Time
}

// Board is everything a sink needs to draw one refresh
type Board struct {
	StopName  string
	Rows      []Row
	UpdatedAt time.Time
}

// Empty reports whether the notice should be shown instead of rows.
func (b Board) Empty() bool {
	return len(b.Rows) == 0
}

// FormatDeparture converts one departure record into a Row. It never reads
// the clock; now is supplied by the caller.
func FormatDeparture(dep golemio.Departure, now time.Time, format golemio.TimestampFormat, loc *time.Location) (Row, error) {
	predicted, err := dep.PredictedTime(format)
	if err != nil {
		return Row{}, err
	}

	return Row{
		Line:        dep.Route.ShortName,
		Destination: dep.Trip.Headsign,
		Status:      Status(predicted, now, loc),
		Predicted:   predicted,
	}, nil
}

// InfoTextLines picks the text of each alert, English first. Alerts with
// neither field are skipped.
func InfoTextLines(texts []golemio.InfoText) []string {
	var lines []string
	for _, info := range texts {
		text := info.TextEn
		if text == "" {
			text = info.Text
		}
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return lines
}
