package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/thisisjab/journalcat/fault"
)

// ErrOutputOverride is reported when the user tries to change journalctl's output mode.
var ErrOutputOverride = fault.New(fault.ConfigCode, "Changing journal output mode is not available. It's always 'json' for journalcat")

type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Flags holds the command line. Unknown arguments end up in JournalArgs.
type Flags struct {
	ConfigPath      string
	Output          string
	Highlight       stringList
	Grep            stringList
	Timestamp       bool
	TimestampFormat string
	Code            bool
	NoQt            bool
	NoPID           bool
	NoID            bool
	PIDs            stringList
	Identifiers     stringList
	File            string
	Script          string
	Replay          string
	Follow          bool
	LocalTime       bool
	LogLevel        string
	Version         bool
	JournalArgs     []string
}

func newFlagSet(f *Flags, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("journalcat", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Print journalctl in a beauty way.")
		fmt.Fprintln(output, "Unrecognized arguments are passed to journalctl; see 'journalctl --help'.")
		fmt.Fprintln(output)
		fs.PrintDefaults()
	}

	str := func(p *string, value, usage string, names ...string) {
		for _, n := range names {
			fs.StringVar(p, n, value, usage)
		}
	}
	list := func(p *stringList, usage string, names ...string) {
		for _, n := range names {
			fs.Var(p, n, usage)
		}
	}
	boolean := func(p *bool, usage string, names ...string) {
		for _, n := range names {
			fs.BoolVar(p, n, false, usage)
		}
	}

	str(&f.Output, "", "changing journal output mode is not available, it is always 'json'", "o", "output")
	list(&f.Highlight, "highlight word (repeatable)", "hl", "highlight")
	list(&f.Grep, "only print lines containing word (repeatable)", "g", "grep")
	boolean(&f.Timestamp, "print timestamp information", "ts", "timestamp")
	str(&f.TimestampFormat, "", "strftime timestamp format (default \"%H:%M:%S.%f\")", "tf", "timestamp-format")
	boolean(&f.Code, "print code line information", "code")
	boolean(&f.NoQt, "do not strip Qt debug data", "no-qt")
	boolean(&f.NoPID, "do not print PID data", "no-pid")
	boolean(&f.NoID, "do not print syslog identifier data", "no-id")
	list(&f.PIDs, "print only messages for certain PID (repeatable)", "pid")
	list(&f.Identifiers, "print only messages for certain syslog identifier (repeatable)", "id")
	str(&f.File, "", "append displayed information in plain text to file", "file")

	str(&f.ConfigPath, "", "config file (default "+DefaultPath+")", "config")
	str(&f.Script, "", "lua script with a process(record) function", "script")
	str(&f.Replay, "", "read journal JSON from file instead of journalctl", "replay")
	boolean(&f.Follow, "keep reading the replay file as it grows", "follow")
	boolean(&f.LocalTime, "render timestamps in the local time zone", "local-time")
	str(&f.LogLevel, "", "diagnostics level: debug, info, warn or error", "log-level")
	boolean(&f.Version, "print version and exit", "version")

	return fs
}

// ParseFlags parses args (without the program name). Returns flag.ErrHelp for -h/--help
// and ErrOutputOverride when -o/--output is given.
func ParseFlags(args []string, output io.Writer) (Flags, error) {
	var f Flags
	fs := newFlagSet(&f, output)

	known, journal := splitArgs(fs, args)
	if err := fs.Parse(known); err != nil {
		return f, err
	}
	f.JournalArgs = journal

	if f.Output != "" {
		fmt.Fprintln(output, ErrOutputOverride.Message())
		return f, ErrOutputOverride
	}

	return f, nil
}

// splitArgs separates arguments this program understands from the ones forwarded to
// journalctl. A known non-boolean flag written without '=' also claims the next argument.
func splitArgs(fs *flag.FlagSet, args []string) (known, journal []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			journal = append(journal, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			journal = append(journal, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		name, _, hasValue := strings.Cut(name, "=")

		if name == "h" || name == "help" {
			known = append(known, arg)
			continue
		}

		fl := fs.Lookup(name)
		if fl == nil && !strings.HasPrefix(arg, "--") && len(name) > 1 && name[0] == 'o' && !hasValue {
			// "-ocat" is the short output flag with its value attached.
			known = append(known, "-o="+name[1:])
			continue
		}
		if fl == nil {
			journal = append(journal, arg)
			continue
		}

		known = append(known, arg)
		if hasValue || isBoolFlag(fl) {
			continue
		}
		if i+1 < len(args) {
			i++
			known = append(known, args[i])
		}
	}
	return known, journal
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// Apply layers the command line over a loaded config. Lists are appended, switches can
// only be turned on and non-empty strings replace file values.
func (f Flags) Apply(cfg Config) Config {
	cfg.Highlight = append(cfg.Highlight, f.Highlight...)
	cfg.Grep = append(cfg.Grep, f.Grep...)
	cfg.PIDs = append(cfg.PIDs, f.PIDs...)
	cfg.Identifiers = append(cfg.Identifiers, f.Identifiers...)

	cfg.Timestamp = cfg.Timestamp || f.Timestamp
	cfg.Code = cfg.Code || f.Code
	cfg.NoQt = cfg.NoQt || f.NoQt
	cfg.NoPID = cfg.NoPID || f.NoPID
	cfg.NoID = cfg.NoID || f.NoID
	cfg.LocalTime = cfg.LocalTime || f.LocalTime

	if f.TimestampFormat != "" {
		cfg.TimestampFormat = f.TimestampFormat
	}
	if f.File != "" {
		cfg.File = f.File
	}
	if f.Script != "" {
		cfg.Script = f.Script
	}
	if f.LogLevel != "" {
		cfg.Logger.Level = f.LogLevel
	}

	cfg.Replay = f.Replay
	cfg.Follow = f.Follow
	cfg.JournalArgs = f.JournalArgs

	return cfg
}
