package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thisisjab/journalcat/entity"
	"github.com/thisisjab/journalcat/processor"
)

type Config struct {
	Source     LogSource
	Decoder    Decoder
	Processors []LogProcessor
	Formatter  Formatter
	Terminal   TerminalWriter
	// File is optional.
	File FileWriter
	// Width reports the current terminal width, or a negative value when unbounded.
	// It is asked once per record so resizes take effect immediately.
	Width func() int
}

// Engine reads one line at a time from the source and pushes it through decoding,
// processing, formatting and output before reading the next one.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Engine{cfg: cfg, logger: logger}, nil
}

func (c Config) validate() error {
	if c.Source == nil {
		return errors.New("no log source is configured")
	}

	if c.Decoder == nil {
		return errors.New("no decoder is configured")
	}

	if c.Formatter == nil {
		return errors.New("no formatter is configured")
	}

	if c.Terminal == nil {
		return errors.New("no terminal output is configured")
	}

	if c.Width == nil {
		return errors.New("no terminal width function is configured")
	}

	return nil
}

// Run returns nil when the source is exhausted or ctx is cancelled. Malformed input and
// file output failures are returned as errors.
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan entity.RawLine)
	sourceErr := make(chan error, 1)

	go func() {
		sourceErr <- e.cfg.Source.Provide(ctx, lines)
		close(lines)
	}()
	e.logger.Debug("reading from source.", "source", e.cfg.Source.Name())

	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-lines:
			if !ok {
				err := <-sourceErr
				if err != nil && ctx.Err() == nil {
					return fmt.Errorf("source %s: %w", e.cfg.Source.Name(), err)
				}
				e.logger.Debug("source finished.", "source", e.cfg.Source.Name())
				return nil
			}
			if err := e.handle(raw); err != nil {
				return err
			}
		}
	}
}

func (e *Engine) handle(raw entity.RawLine) error {
	record, err := e.cfg.Decoder.Decode(raw.Data)
	if errors.Is(err, processor.ErrSkip) {
		e.logger.Debug("skipped record without text message.", "source", raw.Source)
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot decode line from %s: %w", raw.Source, err)
	}

	record, keep := e.process(record)
	if !keep {
		return nil
	}

	e.cfg.Terminal.WriteLine(e.cfg.Formatter.Format(record, e.cfg.Width()))

	if e.cfg.File != nil {
		if err := e.cfg.File.WriteLine(e.cfg.Formatter.Plain(record)); err != nil {
			return err
		}
	}

	return nil
}
