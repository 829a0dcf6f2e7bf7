package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestFaultError(t *testing.T) {
	f := New(MalformedInputCode, "cannot decode line")
	if f.Error() != "cannot decode line" {
		t.Fatalf("Error() = %q, want %q", f.Error(), "cannot decode line")
	}

	orig := errors.New("unexpected EOF")
	f = f.WithOriginal(orig)
	if f.Error() != "cannot decode line: unexpected EOF" {
		t.Fatalf("Error() = %q", f.Error())
	}
	if !errors.Is(f, orig) {
		t.Fatalf("errors.Is(fault, original) = false, want true")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("engine: %w", New(ConfigCode, "bad output mode"))

	if !HasCode(err, ConfigCode) {
		t.Fatalf("HasCode(%v, ConfigCode) = false, want true", err)
	}
	if HasCode(err, MalformedInputCode) {
		t.Fatalf("HasCode(%v, MalformedInputCode) = true, want false", err)
	}
	if HasCode(errors.New("plain"), ConfigCode) {
		t.Fatalf("HasCode(plain error) = true, want false")
	}
}

func TestWithMetadataDoesNotMutate(t *testing.T) {
	base := New(UnknownLevelCode, "unknown level")
	withMeta := base.WithMetadata("X")

	if base.Metadata() != nil {
		t.Fatalf("base metadata = %v, want nil", base.Metadata())
	}
	if withMeta.Metadata() != "X" {
		t.Fatalf("metadata = %v, want X", withMeta.Metadata())
	}
}

func TestHasCodeNestedFaults(t *testing.T) {
	inner := New(MalformedInputCode, "bad line")
	err := fmt.Errorf("run: %w", New(ConfigCode, "cannot start").WithOriginal(inner))

	if !HasCode(err, ConfigCode) {
		t.Fatalf("HasCode(%v, ConfigCode) = false, want true", err)
	}
	if !HasCode(err, MalformedInputCode) {
		t.Fatalf("HasCode(%v, MalformedInputCode) = false, want true", err)
	}
	if HasCode(err, UnknownLevelCode) {
		t.Fatalf("HasCode(%v, UnknownLevelCode) = true, want false", err)
	}
}
