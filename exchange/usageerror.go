package exchange

import (
	"fmt"

	"github.com/pkg/errors"
)

//
// ErrMissingArgument is the cause of every UsageError, so callers can match on it with errors.Is.
//
var ErrMissingArgument = errors.New("missing argument")

//
// UsageError represents a call that could not possibly succeed because the caller omitted a
// required argument. It is always raised locally, before any network activity takes place.
//
type UsageError struct {
	Op       string
	Argument string
}

func NewUsageError(op string, argument string) *UsageError {
	return &UsageError{
		Op:       op,
		Argument: argument,
	}
}

func (o *UsageError) Error() string {
	return fmt.Sprintf("%s: no %s provided", o.Op, o.Argument)
}

func (o *UsageError) Unwrap() error {
	return ErrMissingArgument
}
