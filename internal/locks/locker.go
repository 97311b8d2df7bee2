package locks

import (
	"context"
	"errors"
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
)

// Release gives a held lock back. Calling it more than once is harmless.
type Release func(ctx context.Context) error

// Locker serialises read-decide-write sequences that share a key.
type Locker interface {
	Acquire(ctx context.Context, key string) (Release, error)
}

var ErrLockBusy = errors.New("lock is held by another request")

// AssignmentKey scopes a lock to one worker on one calendar day.
func AssignmentKey(workerID string, day time.Time) string {
	return workerID + ":" + calendar.DayKey(day)
}
