package processor

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thisisjab/journalcat/entity"
	"github.com/thisisjab/journalcat/fault"
	"github.com/valyala/fastjson"
)

// Journal export field names as emitted by `journalctl -o json`.
const (
	FieldMessage    = "MESSAGE"
	FieldPriority   = "PRIORITY"
	FieldPID        = "_PID"
	FieldIdentifier = "SYSLOG_IDENTIFIER"
	FieldRealtime   = "__REALTIME_TIMESTAMP"
	FieldCodeFunc   = "CODE_FUNC"
	FieldCodeLine   = "CODE_LINE"
	FieldCodeFile   = "CODE_FILE"
)

// JournalDecoder turns one line of journal JSON into an entity.Record.
type JournalDecoder struct {
	logger *slog.Logger
	parser fastjson.ParserPool
}

func NewJournalDecoder(logger *slog.Logger) *JournalDecoder {
	return &JournalDecoder{logger: logger}
}

// Decode parses line. Records without a textual MESSAGE yield ErrSkip; lines that are
// not a JSON object yield a malformed input fault.
func (d *JournalDecoder) Decode(line []byte) (entity.Record, error) {
	p := d.parser.Get()
	defer d.parser.Put(p)

	v, err := p.ParseBytes(line)
	if err != nil {
		return entity.Record{}, fault.New(fault.MalformedInputCode, "cannot parse journal record").WithOriginal(err)
	}
	if v.Type() != fastjson.TypeObject {
		return entity.Record{}, fault.New(fault.MalformedInputCode, fmt.Sprintf("journal record is a %s, not an object", v.Type()))
	}

	msg := v.Get(FieldMessage)
	if msg == nil || msg.Type() != fastjson.TypeString {
		// Binary payloads are exported as byte arrays; those are not printable.
		return entity.Record{}, ErrSkip
	}

	rec := entity.Record{
		Message:    strings.ReplaceAll(strings.TrimSpace(string(msg.GetStringBytes())), "\n", ""),
		Priority:   entity.PriorityDebug,
		PID:        scalar(v, FieldPID),
		Identifier: scalar(v, FieldIdentifier),
		CodeFunc:   scalar(v, FieldCodeFunc),
		CodeLine:   scalar(v, FieldCodeLine),
		CodeFile:   scalar(v, FieldCodeFile),
	}

	if raw := scalar(v, FieldPriority); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Record{}, fault.New(fault.MalformedInputCode, "invalid PRIORITY field").WithOriginal(err)
		}
		if n < 0 || n >= entity.PriorityCount {
			d.logger.Warn("priority out of range, using debug.", "priority", n)
		} else {
			rec.Priority = entity.Priority(n)
		}
	}

	if raw := scalar(v, FieldRealtime); raw != "" {
		us, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entity.Record{}, fault.New(fault.MalformedInputCode, "invalid __REALTIME_TIMESTAMP field").WithOriginal(err)
		}
		rec.Realtime = us
		rec.HasRealtime = true
	}

	return rec, nil
}

// scalar returns the textual form of a string or number field, or "" when absent.
// journalctl exports every field as a string, but hand-written replays often use numbers.
func scalar(v *fastjson.Value, key string) string {
	f := v.Get(key)
	if f == nil {
		return ""
	}
	switch f.Type() {
	case fastjson.TypeString:
		return string(f.GetStringBytes())
	case fastjson.TypeNumber:
		return f.String()
	default:
		return ""
	}
}
