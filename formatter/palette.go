package formatter

import "github.com/thisisjab/journalcat/entity"

// headerWidth is the printed width of a palette entry plus the separator after the header.
const headerWidth = 3

var palette = [entity.PriorityCount]string{
	colorize("! ", ptr(black), ptr(red)),    // emerg
	colorize("A ", ptr(black), ptr(red)),    // alert
	colorize("C ", ptr(black), ptr(red)),    // crit
	colorize("E ", ptr(black), ptr(red)),    // err
	colorize("W ", ptr(black), ptr(yellow)), // warning
	colorize("N ", ptr(black), ptr(green)),  // notice
	colorize("I ", ptr(black), ptr(green)),  // info
	colorize("D ", ptr(black), ptr(blue)),   // debug
}

var highlightMarker = colorize(" ", nil, ptr(green))

// Header returns the colored severity tag for p.
func Header(p entity.Priority) string {
	if !p.Valid() {
		panic("formatter: priority out of range")
	}
	return palette[p]
}
