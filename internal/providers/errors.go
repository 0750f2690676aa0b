package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable indicates a provider was not configured or wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures non-2xx responses from the upstream scoreboard API.
type StatusError struct {
	Sport      string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream %s: unexpected status %d: %s", e.Sport, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upstream %s: unexpected status %d", e.Sport, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
