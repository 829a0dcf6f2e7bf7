package processor

import (
	"errors"
	"testing"

	"github.com/thisisjab/journalcat/entity"
)

func TestFilterKeep(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		record entity.Record
		want   bool
	}{
		{"no configuration", NewFilter(nil, nil, nil), entity.Record{Message: "anything"}, true},
		{"contains first word", NewFilter([]string{"alpha", "beta"}, nil, nil), entity.Record{Message: "x alpha y"}, true},
		{"contains second word", NewFilter([]string{"alpha", "beta"}, nil, nil), entity.Record{Message: "betamax"}, true},
		{"contains neither", NewFilter([]string{"alpha", "beta"}, nil, nil), entity.Record{Message: "gamma"}, false},
		{"case sensitive", NewFilter([]string{"alpha"}, nil, nil), entity.Record{Message: "ALPHA"}, false},
		{"pid allowed", NewFilter(nil, []string{"1", "2"}, nil), entity.Record{Message: "m", PID: "2"}, true},
		{"pid rejected", NewFilter(nil, []string{"1"}, nil), entity.Record{Message: "m", PID: "2"}, false},
		{"identifier rejected", NewFilter(nil, nil, []string{"sshd"}), entity.Record{Message: "m", Identifier: "cron"}, false},
		{"identifier and grep", NewFilter([]string{"fail"}, nil, []string{"sshd"}), entity.Record{Message: "auth fail", Identifier: "sshd"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Keep(tt.record); got != tt.want {
				t.Errorf("Keep(%+v) = %v, want %v", tt.record, got, tt.want)
			}
		})
	}
}

func TestFilterProcessSkips(t *testing.T) {
	f := NewFilter([]string{"needle"}, nil, nil)
	if _, err := f.Process(entity.Record{Message: "haystack"}); !errors.Is(err, ErrSkip) {
		t.Fatalf("Process() error = %v, want ErrSkip", err)
	}
	if _, err := f.Process(entity.Record{Message: "a needle"}); err != nil {
		t.Fatalf("Process() error = %v, want nil", err)
	}
}
