package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"pidboard/pkg/board"
)

func TestTerminalSink_RenderBoard(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, "tyršův dům", time.UTC, false)

	sink.RenderInfoTexts([]string{"Tram closure"})
	sink.RenderBoard(board.Board{
		Rows: []board.Row{
			{Line: "22", Destination: "Bílá Hora", Status: "(3 min)"},
			{Line: "9", Destination: "Spojovací", Status: "DEPARTED"},
		},
		UpdatedAt: time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	out := buf.String()
	for _, want := range []string{"Tyršův Dům", "Tram closure", "22", "Bílá Hora", "(3 min)", "Spojovací", "DEPARTED", "Updated 14:00:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected frame to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "Bílá Hora") > strings.Index(out, "Spojovací") {
		t.Errorf("expected rows in response order")
	}
	if strings.Contains(out, clearScreen) {
		t.Errorf("expected no clear-screen sequence when clear is false")
	}
}

func TestTerminalSink_EmptyAndError(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, "Tyršův dům", nil, true)

	sink.RenderBoard(board.Board{})
	if !strings.Contains(buf.String(), board.NoDeparturesNotice) {
		t.Errorf("expected notice for empty board, got:\n%s", buf.String())
	}
	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Errorf("expected frame to start by clearing the screen")
	}

	buf.Reset()
	sink.RenderError("Failed to load departures. Error: HTTP error! Status: 500")

	out := buf.String()
	if !strings.Contains(out, "Status: 500") {
		t.Errorf("expected error message in frame, got:\n%s", out)
	}
	if strings.Contains(out, board.NoDeparturesNotice) {
		t.Errorf("expected error frame to replace the previous board")
	}
}

func TestTerminalSink_InfoTextsCleared(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, "Tyršův dům", nil, false)

	sink.RenderInfoTexts([]string{"Closure"})
	sink.RenderInfoTexts(nil)
	sink.RenderBoard(board.Board{})

	if strings.Contains(buf.String(), "Closure") {
		t.Errorf("expected cleared info texts not to be drawn, got:\n%s", buf.String())
	}
}
