package history

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a delete targets a session id that is
// not in the presented list.
var ErrSessionNotFound = errors.New("session not found")

// FeedFetchError wraps a failure of either feed request. A history load
// surfaces at most one of these; there is no partial display.
type FeedFetchError struct {
	Feed string // "uploads" or "validations"
	Err  error
}

func (e *FeedFetchError) Error() string {
	return fmt.Sprintf("fetch %s feed: %v", e.Feed, e.Err)
}

func (e *FeedFetchError) Unwrap() error {
	return e.Err
}

// CascadeDeleteError aggregates the outcome of a session's fan-out delete.
// Deletes that succeeded before another one failed are not rolled back, so a
// failed cascade can leave the store partially deleted.
type CascadeDeleteError struct {
	SessionID string
	Failed    int
	Total     int
	Errs      []error
}

func (e *CascadeDeleteError) Error() string {
	return fmt.Sprintf("delete session %s: %d of %d deletes failed", e.SessionID, e.Failed, e.Total)
}

func (e *CascadeDeleteError) Unwrap() []error {
	return e.Errs
}
