package processor

import (
	"slices"
	"strings"

	"github.com/thisisjab/journalcat/entity"
)

// Filter keeps records whose message contains any grep word and, when restricted,
// whose PID or identifier is in the allowed set.
type Filter struct {
	grep        []string
	pids        []string
	identifiers []string
}

func NewFilter(grep, pids, identifiers []string) *Filter {
	return &Filter{grep: grep, pids: pids, identifiers: identifiers}
}

func (f *Filter) Process(record entity.Record) (entity.Record, error) {
	if !f.Keep(record) {
		return record, ErrSkip
	}
	return record, nil
}

func (f *Filter) Keep(record entity.Record) bool {
	if len(f.pids) > 0 && !slices.Contains(f.pids, record.PID) {
		return false
	}
	if len(f.identifiers) > 0 && !slices.Contains(f.identifiers, record.Identifier) {
		return false
	}
	if len(f.grep) == 0 {
		return true
	}
	for _, word := range f.grep {
		if strings.Contains(record.Message, word) {
			return true
		}
	}
	return false
}
