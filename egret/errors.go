package egret

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the count helpers when the bundle lacks the
// part being counted.
var ErrNotFound = errors.New("not found")

// MissingFieldError reports that a generic mapping has no usable value for
// a bundle part.
type MissingFieldError struct {
	Key    string // Mapping key that was looked up
	Part   Part
	Reason string // Optional detail, e.g. an unexpected value type
}

func (e *MissingFieldError) Error() string {
	msg := fmt.Sprintf("mapping has no %q field for the %s part", e.Key, e.Part)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ContractViolationError reports a call that breaks an operation's
// precondition. It signals a programming error and is never retried.
type ContractViolationError struct {
	Op     string
	Reason string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Reason)
}
