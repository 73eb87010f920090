package web

import (
	"html/template"
	"sync"
	"time"

	"pidboard/pkg/board"
)

const loadingNotice = "Loading departures..."

// HTMLSink holds the current markup of the board and info-text areas.
// Overlapping refreshes may write concurrently; the last write wins.
type HTMLSink struct {
	mu        sync.RWMutex
	board     template.HTML
	infoTexts template.HTML
	updatedAt time.Time
}

func NewHTMLSink() *HTMLSink {
	return &HTMLSink{
		board: execute(noticeTmpl, loadingNotice),
	}
}

func (s *HTMLSink) RenderInfoTexts(lines []string) {
	html := InfoTextsHTML(lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.infoTexts = html
}

func (s *HTMLSink) RenderBoard(b board.Board) {
	html := BoardHTML(b)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = html
	s.updatedAt = b.UpdatedAt
}

func (s *HTMLSink) RenderError(message string) {
	html := ErrorHTML(message)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = html
}

// Board returns the departure-board markup.
func (s *HTMLSink) Board() template.HTML {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// InfoTexts returns the info-text markup, empty when there are no alerts.
func (s *HTMLSink) InfoTexts() template.HTML {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.infoTexts
}

// UpdatedAt is the time of the last successful render, zero before one.
func (s *HTMLSink) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
