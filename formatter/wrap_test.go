package formatter

import (
	"strings"
	"testing"
)

func TestIndentWrap(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		width      int
		headerSize int
		extra      string
		expected   string
	}{
		{
			name:       "unbounded",
			message:    "a\tb",
			width:      Unbounded,
			headerSize: 3,
			expected:   "a\tb",
		},
		{
			name:       "fits on one line",
			message:    "hello",
			width:      20,
			headerSize: 3,
			extra:      "(x)",
			expected:   "hello" + strings.Repeat(" ", 9) + "(x)",
		},
		{
			name:       "wraps with indent",
			message:    "abcdefghijkl",
			width:      12,
			headerSize: 3,
			extra:      "(x)",
			expected:   "abcde" + " " + "(x)" + "\n   fghij\n   kl",
		},
		{
			name:       "tabs are expanded",
			message:    "a\tb",
			width:      20,
			headerSize: 2,
			expected:   "a    b" + strings.Repeat(" ", 12),
		},
		{
			name:       "empty message",
			message:    "",
			width:      20,
			headerSize: 3,
			extra:      "(x)",
			expected:   "",
		},
		{
			name:       "terminal too narrow",
			message:    "hello",
			width:      5,
			headerSize: 3,
			extra:      "(x)",
			expected:   "hello (x)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndentWrap(tt.message, tt.width, tt.headerSize, tt.extra)
			if got != tt.expected {
				t.Errorf("IndentWrap() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIndentWrapDecorationColumn(t *testing.T) {
	const (
		width  = 50
		header = 7
	)
	extra := "(sshd:1234)"
	msg := strings.Repeat("x", 100)

	got := IndentWrap(msg, width, header, extra)
	lines := strings.Split(got, "\n")

	area := width - header - len(extra) - 1
	if want := (len(msg) + area - 1) / area; len(lines) != want {
		t.Fatalf("IndentWrap() produced %d lines, want %d", len(lines), want)
	}
	// The header is printed before the wrapped body, so shift by its width.
	if col := header + strings.Index(lines[0], extra); col != width-len(extra) {
		t.Fatalf("decoration at column %d, want %d", col, width-len(extra))
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, strings.Repeat(" ", header)+"x") {
			t.Fatalf("continuation %q not indented by %d", l, header)
		}
	}
}
