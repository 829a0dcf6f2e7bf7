package processor

import (
	"regexp"

	"github.com/thisisjab/journalcat/entity"
	"github.com/thisisjab/journalcat/fault"
)

var qtDebugLine = regexp.MustCompile(`^\[([A-Z])\] (.+?):(\d+) - (.*?)$`)

var qtLevels = map[string]entity.Priority{
	"D": entity.PriorityDebug,
	"I": entity.PriorityInfo,
	"W": entity.PriorityWarning,
	"C": entity.PriorityCritical,
	"F": entity.PriorityAlert,
}

// QtUnwrapper promotes a Qt message-pattern line embedded in MESSAGE
// ("[W] file.cpp:42 - text") to the record's own priority and code location.
type QtUnwrapper struct{}

func NewQtUnwrapper() *QtUnwrapper {
	return &QtUnwrapper{}
}

// Process leaves records without CODE_FUNC or without a matching message untouched.
// A matched but unknown level letter returns the record unchanged together with an
// unknown level fault.
func (QtUnwrapper) Process(record entity.Record) (entity.Record, error) {
	if !record.HasCode() {
		return record, nil
	}

	m := qtDebugLine.FindStringSubmatch(record.Message)
	if m == nil {
		return record, nil
	}

	level, ok := qtLevels[m[1]]
	if !ok {
		return record, fault.New(fault.UnknownLevelCode, "unknown qt log level").WithMetadata(m[1])
	}

	record.Priority = level
	record.CodeFunc = m[2]
	record.CodeLine = m[3]
	record.Message = m[4]

	return record, nil
}
