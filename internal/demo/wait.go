package demo

import (
	"context"
	"time"
)

// Reader is anything that reads as a boolean, such as *tbool.Bool or
// *tbool.Sync.
type Reader interface {
	Get() bool
}

// WaitWhileTrue blocks until r reads false or ctx is done, and returns how
// long it waited. A zero poll interval spins without sleeping; otherwise r
// is checked once per interval.
func WaitWhileTrue(ctx context.Context, r Reader, poll time.Duration) (time.Duration, error) {
	start := time.Now()
	if poll <= 0 {
		for r.Get() {
			if err := ctx.Err(); err != nil {
				return time.Since(start), err
			}
		}
		return time.Since(start), nil
	}

	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for r.Get() {
		select {
		case <-ctx.Done():
			return time.Since(start), ctx.Err()
		case <-ticker.C:
		}
	}
	return time.Since(start), nil
}
