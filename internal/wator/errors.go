package wator

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigError via errors.Is.
var ErrConfiguration = errors.New("wator: configuration error")

// Configuration error codes.
const (
	CodeOverCapacity  = "OVER_CAPACITY"
	CodeInvalidDims   = "INVALID_DIMS"
	CodeInvalidParam  = "INVALID_PARAM"
	CodeUnknownLayout = "UNKNOWN_LAYOUT"
)

// ConfigError reports parameters that cannot produce a valid run.
// It is returned before any grid state is touched.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErrorf(code, format string, args ...any) *ConfigError {
	return &ConfigError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// InvariantViolation is the panic value raised when the step engine
// would place two creatures on the same cell. It is unreachable unless
// the engine itself is broken.
type InvariantViolation struct {
	Pos     Pos
	Present Cell
	Placed  Cell
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("wator: invariant violation: %v placed on %v already holding %v",
		v.Placed, v.Pos, v.Present)
}
