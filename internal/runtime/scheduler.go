package runtime

import (
	"time"

	"github.com/aretw0/countdown/pkg/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// timerScheduler backs ports.Scheduler with time.AfterFunc.
type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) ports.CancelFunc {
	return time.AfterFunc(d, f).Stop
}

// SystemClock returns the wall clock.
func SystemClock() ports.Clock { return systemClock{} }

// TimerScheduler returns a scheduler backed by runtime timers.
func TimerScheduler() ports.Scheduler { return timerScheduler{} }
