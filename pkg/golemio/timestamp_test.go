package golemio

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampFormat_Parse(t *testing.T) {
	want := time.Date(2026, 10, 15, 12, 3, 0, 0, time.UTC)

	iso, err := ISO8601.Parse(json.RawMessage(`"2026-10-15T14:03:00+02:00"`))
	if err != nil {
		t.Fatalf("unexpected error parsing ISO timestamp: %v", err)
	}
	if !iso.Equal(want) {
		t.Errorf("expected %s, got %s", want, iso)
	}

	isoMillis, err := ISO8601.Parse(json.RawMessage(`"2026-10-15T12:03:00.000Z"`))
	if err != nil {
		t.Fatalf("unexpected error parsing ISO timestamp with millis: %v", err)
	}
	if !isoMillis.Equal(want) {
		t.Errorf("expected %s, got %s", want, isoMillis)
	}

	epoch, err := EpochSeconds.Parse(json.RawMessage(`1792065780`))
	if err != nil {
		t.Fatalf("unexpected error parsing epoch timestamp: %v", err)
	}
	if !epoch.Equal(want) {
		t.Errorf("expected %s, got %s", want, epoch.UTC())
	}
}

func TestTimestampFormat_NoAutoDetect(t *testing.T) {
	if _, err := ISO8601.Parse(json.RawMessage(`1792065780`)); err == nil {
		t.Errorf("expected ISO8601 to reject an epoch number")
	}
	if _, err := EpochSeconds.Parse(json.RawMessage(`"2026-10-15T14:03:00+02:00"`)); err == nil {
		t.Errorf("expected EpochSeconds to reject an ISO string")
	}
	if _, err := ISO8601.Parse(json.RawMessage(`null`)); err == nil {
		t.Errorf("expected error for null timestamp")
	}
	if _, err := ISO8601.Parse(nil); err == nil {
		t.Errorf("expected error for missing timestamp")
	}
}

func TestParseTimestampFormat(t *testing.T) {
	for in, want := range map[string]TimestampFormat{
		"":        ISO8601,
		"iso8601": ISO8601,
		"ISO":     ISO8601,
		"epoch":   EpochSeconds,
		" unix ":  EpochSeconds,
	} {
		got, err := ParseTimestampFormat(in)
		if err != nil {
			t.Errorf("ParseTimestampFormat(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseTimestampFormat(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseTimestampFormat("rfc2822"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestDeparture_PredictedTime_ParseKind(t *testing.T) {
	d := Departure{
		Route:              Route{ShortName: "22"},
		Trip:               Trip{Headsign: "Bílá Hora"},
		DepartureTimestamp: DepartureTimestamp{Predicted: json.RawMessage(`"soon"`)},
	}

	_, err := d.PredictedTime(ISO8601)
	if kind, ok := KindOf(err); !ok || kind != KindParse {
		t.Errorf("expected parse error, got %v", err)
	}
}
