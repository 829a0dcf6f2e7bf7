package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Unbounded is the terminal width used when no size is known; it disables wrapping.
const Unbounded = -1

// IndentWrap breaks message into chunks that fit between a gutter of headerSize columns
// and the right edge of a width-column terminal. The first chunk is padded so that extra
// ends flush with the terminal's last column; later chunks are indented by headerSize.
func IndentWrap(message string, width, headerSize int, extra string) string {
	if width < 0 {
		return message
	}
	message = strings.ReplaceAll(message, "\t", "    ")

	area := width - headerSize - runewidth.StringWidth(extra) - 1
	if area < 1 {
		if extra == "" {
			return message
		}
		return message + " " + extra
	}

	runes := []rune(message)
	indent := strings.Repeat(" ", headerSize)

	var b strings.Builder
	for current := 0; current < len(runes); {
		next := min(current+area, len(runes))
		b.WriteString(string(runes[current:next]))
		if current == 0 {
			b.WriteString(strings.Repeat(" ", area-next+1))
			b.WriteString(extra)
		}
		if next < len(runes) {
			b.WriteByte('\n')
			b.WriteString(indent)
		}
		current = next
	}

	return b.String()
}
