package sink

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTerminalSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(slog.New(slog.NewTextHandler(io.Discard, nil)), &buf)

	s.WriteLine("one")
	s.WriteLine("two")

	if buf.String() != "one\ntwo\n" {
		t.Fatalf("output = %q, want %q", buf.String(), "one\ntwo\n")
	}
}

func TestTerminalSinkSwallowsErrors(t *testing.T) {
	s := NewTerminalSink(slog.New(slog.NewTextHandler(io.Discard, nil)), failingWriter{})
	// Must not panic or stop the caller.
	s.WriteLine("lost")
}

func TestFileSinkAppendsAndFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	if err := os.WriteFile(path, []byte("existing\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("NewFileSink error = %v", err)
	}
	defer s.Close()

	if err := s.WriteLine("first"); err != nil {
		t.Fatalf("WriteLine error = %v", err)
	}

	// Visible before Close because every line is flushed.
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "existing\nfirst\n" {
		t.Fatalf("file = %q, want %q", got, "existing\nfirst\n")
	}
}

func TestNewFileSinkBadPath(t *testing.T) {
	if _, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "out.log")); err == nil {
		t.Fatalf("NewFileSink error = nil, want error")
	}
}
