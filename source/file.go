package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/thisisjab/journalcat/entity"
)

// FileSource replays a saved journal JSON export. With follow enabled it keeps watching
// the file and forwards lines as they are appended.
type FileSource struct {
	filePath string
	follow   bool
	logger   *slog.Logger
}

// NewFileSource creates a new FileSource instance.
func NewFileSource(logger *slog.Logger, filePath string, follow bool) *FileSource {
	return &FileSource{
		logger:   logger,
		filePath: filePath,
		follow:   follow,
	}
}

func (f *FileSource) Name() string {
	return f.filePath
}

func (f *FileSource) Provide(ctx context.Context, logChan chan<- entity.RawLine) error {
	file, err := os.Open(f.filePath)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	lr := newLineReader(f.filePath, file)

	if !f.follow {
		stop, err := lr.drain(ctx, logChan)
		if err != nil {
			return err
		}
		if !stop {
			lr.flush(ctx, logChan)
		}
		return nil
	}

	// Register the watch before the first read so no append between the two is missed.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(f.filePath); err != nil {
		return fmt.Errorf("cannot add file to watcher: %w", err)
	}

	if stop, err := lr.drain(ctx, logChan); stop || err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				f.logger.Debug("fsnotify watcher channel is closed.")
				return nil
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				f.logger.Info("replay file went away, stopping.", "file", f.filePath, "event", event.Op.String())
				lr.flush(ctx, logChan)
				return nil
			}
			if !event.Has(fsnotify.Write) {
				f.logger.Debug("Received unhandled event from fsnotify.", "event", event.String())
				continue
			}

			if stop, err := lr.drain(ctx, logChan); stop || err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
