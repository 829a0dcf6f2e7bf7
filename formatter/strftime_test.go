package formatter

import (
	"testing"
	"time"
)

func TestStrftime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 9, 123456000, time.UTC)

	tests := map[string]string{
		DefaultTimestampFormat: "14:07:09.123456",
		"%Y-%m-%d":             "2024-03-05",
		"%y/%j":                "24/065",
		"%I:%M %p":             "02:07 PM",
		"%a %A %b %B":          "Tue Tuesday Mar March",
		"100%%":                "100%",
	}

	for layout, want := range tests {
		if got := Strftime(ts, layout); got != want {
			t.Errorf("Strftime(%q) = %q, want %q", layout, got, want)
		}
	}
}

func TestStrftimeEpochOffset(t *testing.T) {
	got := Strftime(time.UnixMicro(1000000).UTC(), DefaultTimestampFormat)
	if got != "00:00:01.000000" {
		t.Fatalf("Strftime() = %q, want %q", got, "00:00:01.000000")
	}
}
