package board

import "sync"

// Recorder is a Sink that keeps only the latest render. It lets a single
// refresh run off-screen (behind a spinner, or for an export) and be drawn
// afterwards with Replay.
type Recorder struct {
	mu        sync.Mutex
	board     Board
	infoTexts []string
	errMsg    string
	rendered  bool
}

func (r *Recorder) RenderInfoTexts(lines []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infoTexts = lines
}

func (r *Recorder) RenderBoard(b Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.board = b
	r.errMsg = ""
	r.rendered = true
}

func (r *Recorder) RenderError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.board = Board{}
	r.errMsg = message
	r.rendered = true
}

// Board returns the last successfully rendered board, and false if the
// last render was an error or nothing was rendered yet.
func (r *Recorder) Board() (Board, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board, r.rendered && r.errMsg == ""
}

// Replay draws the recorded state onto s.
func (r *Recorder) Replay(s Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.rendered {
		return
	}
	s.RenderInfoTexts(r.infoTexts)
	if r.errMsg != "" {
		s.RenderError(r.errMsg)
		return
	}
	s.RenderBoard(r.board)
}
