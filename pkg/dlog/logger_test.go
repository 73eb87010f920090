package dlog

import (
	"bytes"
	"io"
	"testing"
)

func TestNew_Options(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithPrefix("pidboard: "), WithFlags(0))

	l.Printf("refresh failed: %s", "boom")

	if got := buf.String(); got != "pidboard: refresh failed: boom\n" {
		t.Errorf("unexpected log output: %q", got)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	// Must not panic or write anywhere visible
	l.Printf("nothing to see")
	l.Debugf("nothing to see %d", 1)

	if l.Writer() != io.Discard {
		t.Errorf("expected discard logger to write to io.Discard")
	}
}
