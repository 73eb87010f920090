package board

import (
	"reflect"
	"testing"
)

func TestRecorder_Replay(t *testing.T) {
	rec := &Recorder{}
	target := &recordingSink{}

	rec.Replay(target)
	if len(target.boards)+len(target.errors)+len(target.infoTexts) != 0 {
		t.Fatalf("expected nothing replayed before the first render")
	}

	b := Board{StopName: "Tyršův dům", Rows: []Row{{Line: "22", Destination: "Bílá Hora", Status: "(2 min)"}}}
	rec.RenderInfoTexts([]string{"Closure"})
	rec.RenderBoard(b)

	got, ok := rec.Board()
	if !ok || !reflect.DeepEqual(got, b) {
		t.Errorf("expected recorded board %+v, got %+v (ok=%v)", b, got, ok)
	}

	rec.Replay(target)
	if len(target.boards) != 1 || !reflect.DeepEqual(target.infoTexts, [][]string{{"Closure"}}) {
		t.Errorf("unexpected replay: %+v", target)
	}
}

func TestRecorder_ErrorReplacesBoard(t *testing.T) {
	rec := &Recorder{}
	rec.RenderBoard(Board{Rows: []Row{{Line: "22"}}})
	rec.RenderError("Failed to load departures. Error: boom")

	if _, ok := rec.Board(); ok {
		t.Errorf("expected no board after an error render")
	}

	target := &recordingSink{}
	rec.Replay(target)
	if len(target.boards) != 0 || len(target.errors) != 1 {
		t.Errorf("expected only the error to be replayed, got %+v", target)
	}
}
