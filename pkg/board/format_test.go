package board

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"pidboard/pkg/golemio"
)

func departure(line, headsign, predicted string) golemio.Departure {
	return golemio.Departure{
		Route:              golemio.Route{ShortName: line},
		Trip:               golemio.Trip{Headsign: headsign},
		DepartureTimestamp: golemio.DepartureTimestamp{Predicted: json.RawMessage(predicted)},
	}
}

func TestFormatDeparture(t *testing.T) {
	loc, _ := LoadLocation("")
	now := time.Date(2026, 10, 15, 14, 0, 0, 0, loc)

	row, err := FormatDeparture(departure("22", "Bílá Hora", `"2026-10-15T14:05:00+02:00"`), now, golemio.ISO8601, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Row{
		Line:        "22",
		Destination: "Bílá Hora",
		Status:      "(5 min)",
		Predicted:   time.Date(2026, 10, 15, 14, 5, 0, 0, loc),
	}
	if row.Line != want.Line || row.Destination != want.Destination || row.Status != want.Status || !row.Predicted.Equal(want.Predicted) {
		t.Errorf("got %+v, want %+v", row, want)
	}
}

func TestFormatDeparture_Epoch(t *testing.T) {
	loc, _ := LoadLocation("")
	now := time.Unix(1792065780, 0)

	row, err := FormatDeparture(departure("9", "Spojovací", `1792066500`), now, golemio.EpochSeconds, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 12 minutes ahead, shown as Prague clock time
	if row.Status != "14:15" {
		t.Errorf("expected clock status 14:15, got %q", row.Status)
	}
}

func TestFormatDeparture_InvalidTimestamp(t *testing.T) {
	_, err := FormatDeparture(departure("9", "Spojovací", `"later"`), time.Now(), golemio.ISO8601, nil)
	if kind, ok := golemio.KindOf(err); !ok || kind != golemio.KindParse {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestInfoTextLines(t *testing.T) {
	texts := []golemio.InfoText{
		{Text: "Pouze česky"},
		{TextEn: "English only"},
		{Text: "Česky", TextEn: "Both, English wins"},
		{},
	}

	got := InfoTextLines(texts)
	want := []string{"Pouze česky", "English only", "Both, English wins"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("InfoTextLines() = %q, want %q", got, want)
	}

	if lines := InfoTextLines(nil); len(lines) != 0 {
		t.Errorf("expected no lines for absent info texts, got %q", lines)
	}
}
