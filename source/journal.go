package source

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/thisisjab/journalcat/entity"
)

type JournalSourceConfig struct {
	// Command is the journal reader binary, journalctl unless overridden.
	Command string
	// ExtraArgs are forwarded verbatim after the output mode flag.
	ExtraArgs   []string
	PIDs        []string
	Identifiers []string
}

// JournalSource spawns journalctl in JSON output mode and reads its stdout.
type JournalSource struct {
	cfg    JournalSourceConfig
	logger *slog.Logger
}

func NewJournalSource(logger *slog.Logger, cfg JournalSourceConfig) *JournalSource {
	if cfg.Command == "" {
		cfg.Command = "journalctl"
	}
	return &JournalSource{cfg: cfg, logger: logger}
}

func (s *JournalSource) Name() string {
	return s.cfg.Command
}

// Args returns the full argument list passed to the journal reader.
func (s *JournalSource) Args() []string {
	args := []string{"-o", "json"}
	args = append(args, s.cfg.ExtraArgs...)
	for _, pid := range s.cfg.PIDs {
		args = append(args, "_PID="+pid)
	}
	for _, id := range s.cfg.Identifiers {
		args = append(args, "SYSLOG_IDENTIFIER="+id)
	}
	return args
}

func (s *JournalSource) Provide(ctx context.Context, logChan chan<- entity.RawLine) error {
	cmd := exec.CommandContext(ctx, s.cfg.Command, s.Args()...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("cannot open %s stdout: %w", s.cfg.Command, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot start %s: %w", s.cfg.Command, err)
	}
	s.logger.Debug("started journal reader.", "command", s.cfg.Command, "args", strings.Join(s.Args(), " "), "pid", cmd.Process.Pid)

	lr := newLineReader(s.Name(), stdout)
	stop, readErr := lr.drain(ctx, logChan)
	if !stop && readErr == nil {
		lr.flush(ctx, logChan)
	}

	if stop {
		// The consumer is done; do not wait on a follow-mode journalctl forever.
		_ = cmd.Process.Kill()
	}

	waitErr := cmd.Wait()
	if readErr != nil {
		return fmt.Errorf("cannot read %s output: %w", s.cfg.Command, readErr)
	}
	if waitErr != nil && !stop && ctx.Err() == nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", s.cfg.Command, waitErr, msg)
		}
		return fmt.Errorf("%s failed: %w", s.cfg.Command, waitErr)
	}

	return nil
}
