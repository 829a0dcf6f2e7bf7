package sink

import (
	"io"
	"log/slog"
)

// TerminalSink prints formatted lines. Write failures such as a closed downstream pipe
// are logged at debug level and otherwise ignored.
type TerminalSink struct {
	w      io.Writer
	logger *slog.Logger
}

func NewTerminalSink(logger *slog.Logger, w io.Writer) *TerminalSink {
	return &TerminalSink{w: w, logger: logger}
}

func (s *TerminalSink) WriteLine(line string) {
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		s.logger.Debug("cannot write to terminal.", "error", err)
	}
}
