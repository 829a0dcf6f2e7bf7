package fault

import (
	"errors"
	"fmt"
)

type faultCode string

const (
	UnknownCode        faultCode = "unknown"
	ConfigCode         faultCode = "config"
	MalformedInputCode faultCode = "malformed_input"
	UnknownLevelCode   faultCode = "unknown_level"
)

type Fault struct {
	code     faultCode
	message  string
	metadata any
	original error
}

func New(code faultCode, message string) Fault {
	return Fault{
		code:    code,
		message: message,
	}
}

func (f Fault) WithMetadata(metadata any) Fault {
	e := f
	e.metadata = metadata
	return e
}

func (f Fault) WithOriginal(original error) Fault {
	e := f
	e.original = original
	return e
}

func (f Fault) Code() faultCode {
	return f.code
}

func (f Fault) Message() string {
	return f.message
}

func (f Fault) Metadata() any {
	return f.metadata
}

func (f Fault) Original() error {
	return f.original
}

func (f Fault) Unwrap() error {
	return f.original
}

func (f Fault) Error() string {
	if f.original != nil {
		return fmt.Sprintf("%s: %v", f.message, f.original)
	}
	return f.message
}

// HasCode reports whether any fault in err's chain carries the given code.
func HasCode(err error, code faultCode) bool {
	for err != nil {
		var f Fault
		if !errors.As(err, &f) {
			return false
		}
		if f.code == code {
			return true
		}
		err = f.original
	}
	return false
}
