package golemio

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind categorizes why a departure board could not be loaded.
type Kind int

const (
	// KindTransport means the request never produced a response.
	KindTransport Kind = iota
	// KindUnauthorized means the API rejected the access token (HTTP 401).
	KindUnauthorized
	// KindHTTP is any other non-2xx status.
	KindHTTP
	// KindParse means the body was not a usable departure board.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnauthorized:
		return "unauthorized"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every Client call that fails.
type Error struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnauthorized:
		return "Unauthorized. Please check your X-Access-Token."
	case KindHTTP:
		return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
	}
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
