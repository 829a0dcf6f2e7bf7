package engine

import "github.com/thisisjab/journalcat/entity"

// Formatter renders records for the terminal and for the plain text file.
type Formatter interface {
	Format(record entity.Record, width int) string
	Plain(record entity.Record) string
}

// TerminalWriter never fails from the engine's point of view.
type TerminalWriter interface {
	WriteLine(line string)
}

// FileWriter receives the plain text rendering of every printed record.
type FileWriter interface {
	WriteLine(line string) error
}
