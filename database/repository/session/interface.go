// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"errors"
	"time"

	"dayplanner/models"
)

// ErrEmptySessionID is returned when a store call carries no session id.
var ErrEmptySessionID = errors.New("session id is required")

// UpdateFunc receives the current schedule of a session and returns the one
// to store. Returning an error aborts the update without writing.
type UpdateFunc func(current []models.Interval) ([]models.Interval, error)

// ScheduleStore keeps one schedule per browser session for as long as the
// session is alive.
type ScheduleStore interface {
	// Load returns the session's schedule, or an empty one for an unknown session.
	Load(ctx context.Context, sessionID string) ([]models.Interval, error)
	// Update applies fn atomically with respect to other updates of the same session.
	Update(ctx context.Context, sessionID string, fn UpdateFunc) ([]models.Interval, error)
	// Sweep forgets sessions idle for longer than idle and reports how many it dropped.
	Sweep(ctx context.Context, idle time.Duration) (int, error)
}
