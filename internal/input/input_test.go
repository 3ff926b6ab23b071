package input

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func createTestStream(bytes ...byte) *Stream {
	s := &Stream{ch: make(chan byte, len(bytes)+1)}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  Input
	}{
		{"letters", "wad ", Input{Up: true, Left: true, Right: true, Space: true}},
		{"arrows", "\x1b[A\x1b[D", Input{Up: true, Left: true}},
		{"right arrow", "\x1b[C", Input{Right: true}},
		{"enter", "\r", Input{Enter: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"unknown", "zx", Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStream([]byte(tt.bytes)...)
			got := s.read(time.Now())
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestKeyHeldThenReleased(t *testing.T) {
	s := createTestStream(' ')
	now := time.Now()

	if !s.read(now).Space {
		t.Fatal("expected space pressed")
	}
	if !s.read(now.Add(keyHoldDuration / 2)).Space {
		t.Error("expected space still held")
	}
	if s.read(now.Add(2 * keyHoldDuration)).Space {
		t.Error("expected space released")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(context.Background(), bufio.NewReader(strings.NewReader("w")))

	deadline := time.Now().Add(time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		ReadInput(s)
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatal("expected stream to close at end of input")
	}
	if !ReadInput(s).Quit {
		t.Error("expected quit after the reader ended")
	}
}

func TestStreamStopsWhenCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	ctx, cancel := context.WithCancel(context.Background())
	s := StartStream(ctx, bufio.NewReader(pr))

	cancel()
	// The reader is blocked in ReadByte; the next byte lets it see the cancellation.
	if _, err := pw.Write([]byte("w")); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		ReadInput(s)
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatal("expected the stream to close after cancellation")
	}
	if in := ReadInput(s); !in.Quit || in.Up {
		t.Errorf("expected only quit after cancellation, got %+v", in)
	}
}
