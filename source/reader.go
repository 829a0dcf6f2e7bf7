package source

import (
	"context"
	"io"

	"github.com/thisisjab/journalcat/entity"
)

// ReaderSource reads journal JSON that is already being piped in, e.g. a saved
// `journalctl -o json` dump replayed through stdin.
type ReaderSource struct {
	name   string
	reader io.Reader
}

func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, reader: r}
}

func (s *ReaderSource) Name() string {
	return s.name
}

func (s *ReaderSource) Provide(ctx context.Context, logChan chan<- entity.RawLine) error {
	lr := newLineReader(s.name, s.reader)

	stop, err := lr.drain(ctx, logChan)
	if err != nil {
		return err
	}
	if !stop {
		lr.flush(ctx, logChan)
	}
	return nil
}
