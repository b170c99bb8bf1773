package scan

import (
	"time"

	"github.com/rl1809/weaselparts/internal/port"
)

// SystemClock is the wall clock backed by time.AfterFunc.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) port.Timer {
	return time.AfterFunc(d, f)
}
