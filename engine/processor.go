package engine

import (
	"errors"

	"github.com/thisisjab/journalcat/entity"
	"github.com/thisisjab/journalcat/fault"
	"github.com/thisisjab/journalcat/processor"
)

// Decoder turns a raw line into a record. processor.ErrSkip means there is nothing to print.
type Decoder interface {
	Decode(line []byte) (entity.Record, error)
}

// LogProcessor is an interface that defines the contract for log processors.
type LogProcessor interface {
	Process(record entity.Record) (entity.Record, error)
}

// process runs record through every stage in order. keep is false when a stage dropped it.
// Stage failures other than a drop are logged and the record continues unchanged.
func (e *Engine) process(record entity.Record) (entity.Record, bool) {
	for _, p := range e.cfg.Processors {
		next, err := p.Process(record)
		switch {
		case err == nil:
			record = next
		case errors.Is(err, processor.ErrSkip):
			return record, false
		case fault.HasCode(err, fault.UnknownLevelCode):
			var f fault.Fault
			errors.As(err, &f)
			e.logger.Warn("unknown embedded log level, message left as is.", "level", f.Metadata(), "message", record.Message)
		default:
			e.logger.Warn("failed to process record.", "error", err)
		}
	}
	return record, true
}
