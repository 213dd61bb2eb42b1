package client

import (
	"errors"
	"fmt"
)

// ErrConnect is the transient fault injected by the simulated provider.
var ErrConnect = errors.New("failed to connect to the weather API")

// FailureMessage is the message of every *Error built by the client. Services
// reuse it so all response variants carry the same text.
const FailureMessage = "Exception occurred in client"

// Error wraps any fault raised inside the client. A service that invokes
// several dependencies can match on this single type instead of every
// underlying cause.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// wrap normalizes err into a *Error. Errors that already carry a *Error are
// returned unchanged.
func wrap(err error) error {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return err
	}
	return &Error{Message: FailureMessage, Cause: err}
}
