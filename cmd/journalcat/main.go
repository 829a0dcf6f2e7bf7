package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/thisisjab/journalcat/config"
	"github.com/thisisjab/journalcat/engine"
	"github.com/thisisjab/journalcat/terminal"
)

const version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	// ParseFlags reports its own errors, including the output mode override.
	flags, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	if flags.Version {
		fmt.Println("journalcat", version)
		return 0
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "journalcat: %v\n", err)
		return 1
	}
	cfg = flags.Apply(cfg)

	engineCfg, logger, err := cfg.Parse(config.Runtime{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: terminal.IsInteractive(os.Stdin),
	})
	if err != nil {
		if logger != nil {
			logger.Error("cannot parse configuration.", "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "journalcat: %v\n", err)
		}
		return 1
	}
	if c, ok := engineCfg.File.(io.Closer); ok {
		defer c.Close()
	}

	// Interrupts end the read loop; they are a normal way to stop.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	e, err := engine.New(*engineCfg, logger)
	if err != nil {
		logger.Error("engine error.", "error", err)
		return 1
	}

	if err := e.Run(ctx); err != nil {
		logger.Error("engine error.", "error", err)
		return 1
	}

	logger.Debug("engine stopped.")
	return 0
}
