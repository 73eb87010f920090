package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"pidboard/pkg/board"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const clearScreen = "\033[H\033[2J"

// TerminalSink draws the whole board as one frame on every render.
type TerminalSink struct {
	mu     sync.Mutex
	w      io.Writer
	title  string
	loc    *time.Location
	redraw bool
	info   []string
}

// NewTerminalSink writes frames to w. With redraw set, every frame starts by
// clearing the screen so the board redraws in place.
func NewTerminalSink(w io.Writer, stopName string, loc *time.Location, redraw bool) *TerminalSink {
	if loc == nil {
		loc = time.Local
	}
	return &TerminalSink{
		w:      w,
		title:  cases.Title(language.Czech).String(stopName),
		loc:    loc,
		redraw: redraw,
	}
}

// RenderInfoTexts keeps the alerts for the next frame; the terminal has no
// separate area to update on its own.
func (s *TerminalSink) RenderInfoTexts(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = lines
}

func (s *TerminalSink) RenderBoard(b board.Board) {
	var body strings.Builder

	if b.Empty() {
		body.WriteString(mutedStyle.Render(board.NoDeparturesNotice) + "\n")
	}
	for _, row := range b.Rows {
		fmt.Fprintf(&body, "  %s %-32s %s\n",
			lineStyle.Render(fmt.Sprintf("%-4s", row.Line)),
			row.Destination,
			renderStatus(row.Status),
		)
	}
	if !b.UpdatedAt.IsZero() {
		body.WriteString("\n" + mutedStyle.Render("Updated "+b.UpdatedAt.In(s.loc).Format("15:04:05")) + "\n")
	}

	s.draw(body.String())
}

func (s *TerminalSink) RenderError(message string) {
	s.draw(errorStyle.Render(message) + "\n")
}

func renderStatus(status string) string {
	switch status {
	case board.StatusDeparted:
		return mutedStyle.Render(status)
	case board.StatusImminent:
		return accentStyle.Bold(true).Render(status)
	default:
		return timeStyle.Render(status)
	}
}

func (s *TerminalSink) draw(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var frame strings.Builder
	if s.redraw {
		frame.WriteString(clearScreen)
	}
	frame.WriteString(accentStyle.Render(fmt.Sprintf("--- 🚋 Departures: %s ---", s.title)) + "\n\n")
	for _, line := range s.info {
		frame.WriteString(accentStyle.Render("⚠ "+line) + "\n")
	}
	if len(s.info) > 0 {
		frame.WriteString("\n")
	}
	frame.WriteString(body)

	io.WriteString(s.w, frame.String())
}
