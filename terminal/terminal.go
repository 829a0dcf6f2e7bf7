// Package terminal discovers whether standard input is interactive and how wide the
// controlling terminal is.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Unbounded is returned by Width when no terminal size can be determined.
const Unbounded = -1

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the controlling terminal. It asks stdin, stdout and
// stderr in turn, then /dev/tty, then the COLUMNS environment variable.
func Width() int {
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}

	if tty, err := os.Open("/dev/tty"); err == nil {
		w, _, err := term.GetSize(int(tty.Fd()))
		tty.Close()
		if err == nil && w > 0 {
			return w
		}
	}

	return widthFromEnv(os.Getenv)
}

func widthFromEnv(getenv func(string) string) int {
	w, err := strconv.Atoi(getenv("COLUMNS"))
	if err != nil || w <= 0 {
		return Unbounded
	}
	return w
}
