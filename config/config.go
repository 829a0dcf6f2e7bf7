package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/thisisjab/journalcat/engine"
	"github.com/thisisjab/journalcat/fault"
	"github.com/thisisjab/journalcat/formatter"
	"github.com/thisisjab/journalcat/processor"
	"github.com/thisisjab/journalcat/sink"
	"github.com/thisisjab/journalcat/source"
	"github.com/thisisjab/journalcat/terminal"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "~/.config/journalcat/config.yaml"

type Config struct {
	Highlight       []string     `yaml:"highlight"`
	Grep            []string     `yaml:"grep"`
	Timestamp       bool         `yaml:"timestamp"`
	TimestampFormat string       `yaml:"timestamp_format"`
	Code            bool         `yaml:"code"`
	NoQt            bool         `yaml:"no_qt"`
	NoPID           bool         `yaml:"no_pid"`
	NoID            bool         `yaml:"no_id"`
	PIDs            []string     `yaml:"pid"`
	Identifiers     []string     `yaml:"id"`
	File            string       `yaml:"file"`
	Script          string       `yaml:"script"`
	LocalTime       bool         `yaml:"local_time"`
	Logger          LoggerConfig `yaml:"logger"`

	// Command line only.
	Replay      string   `yaml:"-"`
	Follow      bool     `yaml:"-"`
	JournalArgs []string `yaml:"-"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Type  string `yaml:"type"`
}

// Runtime carries the process streams the pipeline is wired to.
type Runtime struct {
	Stdin       *os.File
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool
}

func Default() Config {
	return Config{
		TimestampFormat: formatter.DefaultTimestampFormat,
		Logger: LoggerConfig{
			Level: "warn",
			Type:  "colored-text",
		},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := expandPath(path)
	if err != nil {
		return cfg, fault.New(fault.ConfigCode, "cannot resolve config path").WithOriginal(err)
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fault.New(fault.ConfigCode, "cannot read config file").WithOriginal(err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Default(), fault.New(fault.ConfigCode, "cannot parse config file").WithOriginal(err)
	}

	if strings.TrimSpace(cfg.TimestampFormat) == "" {
		cfg.TimestampFormat = formatter.DefaultTimestampFormat
	}

	return cfg, nil
}

// Parse builds the pipeline described by cfg. When File is set, the returned
// engine.Config's File also implements io.Closer.
func (cfg Config) Parse(rt Runtime) (*engine.Config, *slog.Logger, error) {
	logger, err := parseLoggerConfig(cfg.Logger, rt.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create logger: %w", err)
	}

	processors, err := cfg.parseProcessors()
	if err != nil {
		return nil, logger, err
	}

	engineCfg := &engine.Config{
		Source:     cfg.parseSource(logger, rt),
		Decoder:    processor.NewJournalDecoder(logger),
		Processors: processors,
		Formatter:  formatter.New(cfg.FormatterOptions()),
		Terminal:   sink.NewTerminalSink(logger, rt.Stdout),
		Width:      terminal.Width,
	}

	if cfg.File != "" {
		fs, err := sink.NewFileSink(cfg.File)
		if err != nil {
			return nil, logger, err
		}
		engineCfg.File = fs
	}

	return engineCfg, logger, nil
}

func (cfg Config) FormatterOptions() formatter.Options {
	opts := formatter.Options{
		Highlight:       cfg.Highlight,
		Timestamp:       cfg.Timestamp,
		TimestampFormat: cfg.TimestampFormat,
		Code:            cfg.Code,
		NoPID:           cfg.NoPID,
		NoID:            cfg.NoID,
		Location:        time.UTC,
	}
	if cfg.LocalTime {
		opts.Location = time.Local
	}
	return opts
}

func (cfg Config) parseSource(logger *slog.Logger, rt Runtime) engine.LogSource {
	switch {
	case cfg.Replay != "":
		return source.NewFileSource(logger, cfg.Replay, cfg.Follow)
	case rt.Interactive:
		return source.NewJournalSource(logger, source.JournalSourceConfig{
			ExtraArgs:   cfg.JournalArgs,
			PIDs:        cfg.PIDs,
			Identifiers: cfg.Identifiers,
		})
	default:
		return source.NewReaderSource("stdin", rt.Stdin)
	}
}

// parseProcessors orders the stages: unwrap, then the user hook, then filtering.
func (cfg Config) parseProcessors() ([]engine.LogProcessor, error) {
	var processors []engine.LogProcessor

	if !cfg.NoQt {
		processors = append(processors, processor.NewQtUnwrapper())
	}

	if cfg.Script != "" {
		hook, err := processor.NewLuaHook(processor.LuaHookConfig{ScriptPath: cfg.Script})
		if err != nil {
			return nil, fmt.Errorf("cannot create lua hook `%s`: %w", cfg.Script, err)
		}
		processors = append(processors, hook)
	}

	if len(cfg.Grep) > 0 || len(cfg.PIDs) > 0 || len(cfg.Identifiers) > 0 {
		processors = append(processors, processor.NewFilter(cfg.Grep, cfg.PIDs, cfg.Identifiers))
	}

	return processors, nil
}

func parseLoggerConfig(cfg LoggerConfig, w io.Writer) (*slog.Logger, error) {
	var handler slog.Handler

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	switch cfg.Type {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "colored-text":
		handler = tint.NewHandler(w, &tint.Options{Level: level, TimeFormat: time.Kitchen})
	default:
		return nil, fmt.Errorf("invalid log type: %s", cfg.Type)
	}

	return slog.New(handler), nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
