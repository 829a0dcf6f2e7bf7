package sink

import (
	"bufio"
	"fmt"
	"os"
)

// FileSink appends plain text lines to a file, flushing after every line.
type FileSink struct {
	file   *os.File
	writer *bufio.Writer
}

func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open output file: %w", err)
	}
	return &FileSink{file: f, writer: bufio.NewWriter(f)}, nil
}

func (s *FileSink) WriteLine(line string) error {
	if _, err := s.writer.WriteString(line); err != nil {
		return fmt.Errorf("cannot write to output file: %w", err)
	}
	if err := s.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("cannot write to output file: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("cannot flush output file: %w", err)
	}
	return nil
}

func (s *FileSink) Close() error {
	if err := s.writer.Flush(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
