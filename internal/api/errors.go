package api

import "errors"

var (
	// ErrUnreachable wraps transport-level failures: DNS, refused
	// connections, timeouts. Presented to users as "cannot reach server".
	ErrUnreachable = errors.New("cannot reach server")

	// ErrSessionExpired is returned when the backend answers 401. The
	// stored token is cleared before this is returned.
	ErrSessionExpired = errors.New("session expired")
)

// Error is a business rejection reported by the backend envelope. The
// message is passed through verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request rejected by server"
}

// IsBusiness reports whether err is a backend-reported rejection rather
// than a transport or client-side failure.
func IsBusiness(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
