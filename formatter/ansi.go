package formatter

import (
	"strconv"
	"strings"
)

type color int

const (
	black color = iota
	red
	green
	yellow
	blue
	magenta
	cyan
	white
)

const (
	reset     = "\033[0m"
	underline = "\033[4m"
	boldCyan  = "\033[1;36m"
)

// termColor builds an SGR sequence. Backgrounds use the bright (10x) range.
func termColor(fg, bg *color) string {
	var codes []string
	if fg != nil {
		codes = append(codes, "3"+strconv.Itoa(int(*fg)))
	}
	if bg != nil {
		codes = append(codes, "10"+strconv.Itoa(int(*bg)))
	}
	if len(codes) == 0 {
		return ""
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}

func colorize(text string, fg, bg *color) string {
	return termColor(fg, bg) + text + reset
}

func ptr(c color) *color {
	return &c
}
