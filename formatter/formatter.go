package formatter

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/thisisjab/journalcat/entity"
)

type Options struct {
	Highlight       []string
	Timestamp       bool
	TimestampFormat string
	Code            bool
	NoPID           bool
	NoID            bool
	// Location is the zone timestamps are rendered in. Nil means UTC.
	Location *time.Location
}

// Formatter renders records as colored terminal lines and as plain file lines.
type Formatter struct {
	opts Options
}

func New(opts Options) *Formatter {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = DefaultTimestampFormat
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Formatter{opts: opts}
}

// Format renders record for a terminal of the given width (Unbounded disables wrapping).
func (f *Formatter) Format(record entity.Record, width int) string {
	header := Header(record.Priority)
	headerSize := headerWidth
	message := record.Message

	if len(f.opts.Highlight) > 0 {
		headerSize++
		var found bool
		message, found = Highlight(message, f.opts.Highlight)
		if found {
			header += highlightMarker
		} else {
			header += " "
		}
	}

	if f.opts.Timestamp {
		ts := f.timestamp(record)
		header += " " + ts
		headerSize += runewidth.StringWidth(ts) + 1
	}

	header += " "

	return header + IndentWrap(f.body(record, message), width, headerSize, f.decoration(record))
}

// Plain renders record without color or wrapping: timestamp, origin and message.
func (f *Formatter) Plain(record entity.Record) string {
	parts := make([]string, 0, 3)
	if record.HasRealtime {
		parts = append(parts, Strftime(f.toTime(record.Realtime), f.opts.TimestampFormat))
	}
	if origin := Origin(record); origin != "" {
		parts = append(parts, origin)
	}
	parts = append(parts, record.Message)
	return strings.Join(parts, " ")
}

// Highlight wraps every occurrence of each word in underline and bold cyan. Words are
// applied in order, so a later word may match inside an earlier replacement.
func Highlight(message string, words []string) (string, bool) {
	found := false
	for _, w := range words {
		if w == "" || !strings.Contains(message, w) {
			continue
		}
		found = true
		message = strings.ReplaceAll(message, w, underline+boldCyan+w+reset)
	}
	return message, found
}

// Origin joins identifier and pid as "id:pid", or returns whichever one is present.
func Origin(record entity.Record) string {
	switch {
	case record.Identifier != "" && record.PID != "":
		return record.Identifier + ":" + record.PID
	case record.Identifier != "":
		return record.Identifier
	default:
		return record.PID
	}
}

// decoration is appended once after the first wrapped chunk. The parens are emitted
// whenever pid or id display is on, even if the record has neither field.
func (f *Formatter) decoration(record entity.Record) string {
	if f.opts.NoPID && f.opts.NoID {
		return ""
	}

	var b strings.Builder
	b.WriteByte('(')
	switch {
	case !f.opts.NoID && record.Identifier != "":
		b.WriteString(record.Identifier)
		if !f.opts.NoPID && record.PID != "" {
			b.WriteString(":" + record.PID)
		}
	case !f.opts.NoPID && record.PID != "":
		b.WriteString(record.PID)
	}
	b.WriteByte(')')
	return b.String()
}

func (f *Formatter) body(record entity.Record, message string) string {
	if !f.opts.Code || !record.HasCode() {
		return message
	}

	var b strings.Builder
	b.WriteString(record.CodeFunc + ":" + record.CodeLine)
	if record.CodeFile != "" {
		b.WriteString("(" + record.CodeFile + ")")
	}
	b.WriteByte(' ')
	b.WriteString(message)
	return b.String()
}

// timestamp keeps the gutter width stable for records without a realtime field by
// printing blanks as wide as the epoch rendered in the same layout.
func (f *Formatter) timestamp(record entity.Record) string {
	if !record.HasRealtime {
		return strings.Repeat(" ", runewidth.StringWidth(Strftime(f.toTime(0), f.opts.TimestampFormat)))
	}
	return Strftime(f.toTime(record.Realtime), f.opts.TimestampFormat)
}

func (f *Formatter) toTime(us int64) time.Time {
	return time.UnixMicro(us).In(f.opts.Location)
}
