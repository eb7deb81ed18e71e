package ports

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// CancelFunc stops a scheduled callback. It reports whether the call
// prevented the callback from running.
type CancelFunc func() bool

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) CancelFunc
}
