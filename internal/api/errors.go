package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xonecas/chatbridge/internal/constants"
	"github.com/xonecas/chatbridge/internal/feed"
)

var (
	// ErrConnectivity wraps failures where no response reached the client.
	ErrConnectivity = errors.New("no response from server")
	// ErrUnauthorized matches any StatusError carrying a 401.
	ErrUnauthorized = errors.New("credential rejected")
	// ErrNoToken is returned when login succeeds but the response holds no token.
	ErrNoToken = errors.New("no token in authentication response")
	// ErrInvalidMessage is returned before sending an outgoing message that fails validation.
	ErrInvalidMessage = feed.ErrInvalidMessage
)

// StatusError is a non-2xx response.
type StatusError struct {
	Op   string
	Code int
	// Body is the server's message, when it sent one.
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Code, e.Body)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Code)
}

// HTTPStatus returns the response status code.
func (e *StatusError) HTTPStatus() int {
	return e.Code
}

// Is reports 401s as ErrUnauthorized.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}

// Failure is the error class of a remote call.
type Failure int

const (
	FailureNone Failure = iota
	FailureConnectivity
	FailureAuth
	FailureStatus
	FailureDecode
	FailureInvalid
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "ok"
	case FailureConnectivity:
		return "connectivity"
	case FailureAuth:
		return "auth"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	case FailureInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Classify sorts err into the failure taxonomy. Unknown errors count as connectivity.
func Classify(err error) Failure {
	var se *StatusError
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrUnauthorized):
		return FailureAuth
	case errors.As(err, &se):
		return FailureStatus
	case errors.Is(err, feed.ErrMalformedFeed), errors.Is(err, ErrNoToken):
		return FailureDecode
	case errors.Is(err, ErrInvalidMessage):
		return FailureInvalid
	default:
		return FailureConnectivity
	}
}

// LoginErrorText maps an Authenticate failure onto the text shown on the login view.
func LoginErrorText(err error) string {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		if se.Body != "" {
			return se.Body
		}
		return constants.LoginRejectedError
	case errors.Is(err, ErrNoToken):
		return constants.LoginMissingTokenError
	default:
		return constants.LoginNetworkError
	}
}
