package terminal

import "testing"

func TestWidthFromEnv(t *testing.T) {
	tests := map[string]int{
		"":      Unbounded,
		"120":   120,
		"0":     Unbounded,
		"-5":    Unbounded,
		"wide":  Unbounded,
		" 80  ": Unbounded,
	}

	for value, want := range tests {
		getenv := func(key string) string {
			if key != "COLUMNS" {
				t.Fatalf("unexpected lookup of %q", key)
			}
			return value
		}
		if got := widthFromEnv(getenv); got != want {
			t.Errorf("widthFromEnv(COLUMNS=%q) = %d, want %d", value, got, want)
		}
	}
}
