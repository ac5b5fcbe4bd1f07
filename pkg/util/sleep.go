package util

import (
	"context"
	"time"
)

// Sleeper abstracts pacing, poll and retry timers so they can be driven
// without real time in tests.
//
//go:generate mockgen -source=sleep.go -destination=mock/sleeper_mock.go -package=util_mock
type Sleeper interface {
	// Sleep waits for d or until ctx is cancelled, returning ctx.Err() in
	// the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper is the production Sleeper.
type TimerSleeper struct{}

// Sleep waits for d or until ctx is cancelled.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
