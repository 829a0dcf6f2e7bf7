package processor

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/thisisjab/journalcat/entity"
	"github.com/thisisjab/journalcat/fault"
)

func newTestDecoder() *JournalDecoder {
	return NewJournalDecoder(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestJournalDecoderDecode(t *testing.T) {
	tests := map[string]entity.Record{
		`{"MESSAGE":"hello","PRIORITY":"6","_PID":"42","SYSLOG_IDENTIFIER":"sshd","__REALTIME_TIMESTAMP":"1000000"}`: {
			Message:     "hello",
			Priority:    entity.PriorityInfo,
			PID:         "42",
			Identifier:  "sshd",
			Realtime:    1000000,
			HasRealtime: true,
		},
		`{"MESSAGE":"  multi\nline\n  "}`: {
			Message:  "multiline",
			Priority: entity.PriorityDebug,
		},
		`{"MESSAGE":"numbers","PRIORITY":3,"_PID":17,"__REALTIME_TIMESTAMP":5}`: {
			Message:     "numbers",
			Priority:    entity.PriorityError,
			PID:         "17",
			Realtime:    5,
			HasRealtime: true,
		},
		`{"MESSAGE":"qt","CODE_FUNC":"main","CODE_LINE":"12","CODE_FILE":"main.cpp"}`: {
			Message:  "qt",
			Priority: entity.PriorityDebug,
			CodeFunc: "main",
			CodeLine: "12",
			CodeFile: "main.cpp",
		},
		`{"MESSAGE":"too urgent","PRIORITY":"9"}`: {
			Message:  "too urgent",
			Priority: entity.PriorityDebug,
		},
	}

	d := newTestDecoder()
	for input, expected := range tests {
		actual, err := d.Decode([]byte(input))
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", input, err)
		}
		if actual != expected {
			t.Fatalf("Decode(%q)\n%+v,\nwant %+v", input, actual, expected)
		}
	}
}

func TestJournalDecoderSkipsRecordsWithoutTextMessage(t *testing.T) {
	inputs := []string{
		`{"PRIORITY":"6"}`,
		`{"MESSAGE":[104,105]}`,
		`{"MESSAGE":null}`,
		`{"MESSAGE":12}`,
	}

	d := newTestDecoder()
	for _, input := range inputs {
		_, err := d.Decode([]byte(input))
		if !errors.Is(err, ErrSkip) {
			t.Fatalf("Decode(%q) error = %v, want ErrSkip", input, err)
		}
	}
}

func TestJournalDecoderMalformed(t *testing.T) {
	inputs := []string{
		`not json`,
		`{"MESSAGE":"unterminated`,
		`["MESSAGE"]`,
		`{"MESSAGE":"x","PRIORITY":"high"}`,
		`{"MESSAGE":"x","__REALTIME_TIMESTAMP":"soon"}`,
	}

	d := newTestDecoder()
	for _, input := range inputs {
		_, err := d.Decode([]byte(input))
		if !fault.HasCode(err, fault.MalformedInputCode) {
			t.Fatalf("Decode(%q) error = %v, want malformed input fault", input, err)
		}
	}
}
