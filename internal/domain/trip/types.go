package trip

import (
	"errors"
	"fmt"
)

type ValidationKind string

const (
	KindMissingField ValidationKind = "missing_field"
	KindInvalidRange ValidationKind = "invalid_range"
)

var (
	ErrValidation         = errors.New("submission validation failed")
	ErrInvalidGroup       = errors.New("invalid group")
	ErrInvalidGroupSize   = errors.New("group size must be at least 2")
	ErrInvalidFingerprint = errors.New("malformed fingerprint")
)

// ValidationError reports the first field of a Submission that failed validation.
type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidGroupError means a group was about to be built with the wrong
// number of members or with a repeated member. Correct callers never see it.
type InvalidGroupError struct {
	Reason string
}

func (e *InvalidGroupError) Error() string {
	return "invalid group: " + e.Reason
}

func (e *InvalidGroupError) Is(target error) bool {
	return target == ErrInvalidGroup
}
