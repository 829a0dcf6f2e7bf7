package formatter

import (
	"time"

	"github.com/itchyny/timefmt-go"
)

// DefaultTimestampFormat prints wallclock time with microseconds.
const DefaultTimestampFormat = "%H:%M:%S.%f"

// Strftime renders t using C-style conversion specifications.
func Strftime(t time.Time, layout string) string {
	return timefmt.Format(t, layout)
}
