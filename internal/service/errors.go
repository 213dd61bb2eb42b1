package service

import "fmt"

// Error is a domain error returned by service methods. Message is written
// by the service itself and is safe to return to API callers.
// Handlers map Kind to an HTTP status.
type Error struct {
	Message string
	Kind    ErrorKind
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ErrorKind says whose fault an error was. It does not choose the status
// code; that is left to the transport.
type ErrorKind int

const (
	KindBusiness   ErrorKind = iota // the request broke a business rule
	KindDependency                  // a dependency failed and the request cannot recover
	KindServer                      // something unexpected failed on our side
)

func (k ErrorKind) String() string {
	switch k {
	case KindBusiness:
		return "business"
	case KindDependency:
		return "dependency"
	case KindServer:
		return "server"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func NewBusiness(message string) Error {
	return Error{Message: message, Kind: KindBusiness}
}

func NewDependency(message string) Error {
	return Error{Message: message, Kind: KindDependency}
}

func NewServer(message string) Error {
	return Error{Message: message, Kind: KindServer}
}
