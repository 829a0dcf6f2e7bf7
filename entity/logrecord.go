package entity

import "time"

// Priority is the syslog severity of a journal record. Lower is more urgent.
type Priority uint8

const (
	PriorityEmergency Priority = iota
	PriorityAlert
	PriorityCritical
	PriorityError
	PriorityWarning
	PriorityNotice
	PriorityInfo
	PriorityDebug
)

// PriorityCount is the number of valid priorities (0..7).
const PriorityCount = 8

func (p Priority) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return [...]string{"emerg", "alert", "crit", "err", "warning", "notice", "info", "debug"}[p]
}

func (p Priority) Valid() bool {
	return p < PriorityCount
}

// RawLine is a single undecoded line received from a log source.
type RawLine struct {
	Source     string
	Data       []byte
	ReceivedAt time.Time
}

// Record is one decoded journal entry. Only Message is guaranteed to be set.
type Record struct {
	Message  string
	Priority Priority

	PID        string
	Identifier string

	// Realtime is the wallclock time of the entry in microseconds since the epoch.
	Realtime    int64
	HasRealtime bool

	CodeFunc string
	CodeLine string
	CodeFile string
}

// HasCode reports whether the record carries source location metadata.
func (r Record) HasCode() bool {
	return r.CodeFunc != ""
}
