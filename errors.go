package nexthire

import (
	"fmt"

	"github.com/pkg/errors"
)

// UsageError means an operation was invoked in the wrong session state. It's
// a caller bug and never mutates state.
type UsageError struct {
	msg string
}

func NewUsageError(format string, args ...interface{}) error {
	return UsageError{msg: fmt.Sprintf(format, args...)}
}

func (e UsageError) Error() string { return e.msg }

func IsUsageError(err error) bool {
	_, ok := errors.Cause(err).(UsageError)
	return ok
}

// TurnError means the generation or synthesis half of a turn failed. The
// session stays active and the caller may retry.
type TurnError struct {
	cause error
	msg   string
}

func NewTurnError(cause error, format string, args ...interface{}) error {
	return TurnError{
		cause: cause,
		msg:   fmt.Sprintf(format, args...),
	}
}

func (e TurnError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func IsTurnError(err error) bool {
	_, ok := errors.Cause(err).(TurnError)
	return ok
}

// ResourceError means a physical resource such as the audio input device is
// unavailable. It aborts the capture call but the session can still be ended
// gracefully.
type ResourceError struct {
	cause error
	msg   string
}

func NewResourceError(cause error, format string, args ...interface{}) error {
	return ResourceError{
		cause: cause,
		msg:   fmt.Sprintf(format, args...),
	}
}

func (e ResourceError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func IsResourceError(err error) bool {
	_, ok := errors.Cause(err).(ResourceError)
	return ok
}
