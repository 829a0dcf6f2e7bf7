package engine

import (
	"context"

	"github.com/thisisjab/journalcat/entity"
)

// LogSource is an interface that defines the contract for log sources (providers).
// Provide returns once the stream ends, an empty line is read or ctx is cancelled.
type LogSource interface {
	Name() string
	Provide(ctx context.Context, logChan chan<- entity.RawLine) error
}
