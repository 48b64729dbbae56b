package dropzone

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ConfigError.
var (
	ErrMissingID     = errors.New("missing id")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrUnknownItem   = errors.New("unknown item")
	ErrUnknownZone   = errors.New("unknown zone")
	ErrSessionActive = errors.New("gesture session active")
)

// ConfigError reports a caller bug: a bad ID passed to registration or to a
// press, or a registry change attempted mid-gesture. It is returned at the
// call site and never surfaced through callbacks.
type ConfigError struct {
	Op  string // e.g. "register draggable", "press"
	ID  string
	Err error
}

func (e *ConfigError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("dropzone: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dropzone: %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(op, id string, err error) error {
	return &ConfigError{Op: op, ID: id, Err: err}
}
