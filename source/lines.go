package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/thisisjab/journalcat/entity"
)

// lineReader splits a stream into trimmed lines, keeping an incomplete trailing line
// around until more data arrives.
type lineReader struct {
	source  string
	reader  *bufio.Reader
	partial []byte
}

func newLineReader(source string, r io.Reader) *lineReader {
	return &lineReader{source: source, reader: bufio.NewReaderSize(r, 64*1024)}
}

// drain forwards every complete line until the reader reaches EOF. stop is true when an
// empty line was read or ctx was cancelled; both end the stream.
func (lr *lineReader) drain(ctx context.Context, out chan<- entity.RawLine) (stop bool, err error) {
	for {
		chunk, err := lr.reader.ReadBytes('\n')
		lr.partial = append(lr.partial, chunk...)
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return true, err
		}

		if !lr.emit(ctx, out) {
			return true, nil
		}
	}
}

// flush forwards a final line that was not newline terminated.
func (lr *lineReader) flush(ctx context.Context, out chan<- entity.RawLine) {
	if len(lr.partial) > 0 {
		lr.emit(ctx, out)
	}
}

func (lr *lineReader) emit(ctx context.Context, out chan<- entity.RawLine) bool {
	data := bytes.Clone(bytes.TrimSpace(lr.partial))
	lr.partial = lr.partial[:0]
	if len(data) == 0 {
		return false
	}

	select {
	case out <- entity.RawLine{Source: lr.source, Data: data, ReceivedAt: time.Now()}:
		return true
	case <-ctx.Done():
		return false
	}
}
