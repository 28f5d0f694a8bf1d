// Package upstream holds the shared HTTP plumbing for provider clients:
// a JSON fetcher, circuit breaking, and the error type the API layer
// turns into gateway responses.
package upstream

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Error is a failed upstream call. StatusCode is zero when the request
// never produced a response (network error, breaker open).
type Error struct {
	Provider   string
	Operation  string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: upstream status %d", e.Provider, e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Operation, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an upstream 404, the signal that
// flips single-game reads onto the fallback path.
func IsNotFound(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}

// AsUpstream unwraps err to its upstream Error, if any.
func AsUpstream(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
