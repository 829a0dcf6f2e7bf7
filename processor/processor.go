package processor

import (
	"errors"

	"github.com/thisisjab/journalcat/entity"
)

// ErrSkip is returned by a stage when the record must be dropped without output.
var ErrSkip = errors.New("record skipped")

// LogProcessor transforms a decoded record. Returning ErrSkip drops the record.
type LogProcessor interface {
	Process(record entity.Record) (entity.Record, error)
}
