package port

import "time"

// Timer is a pending callback scheduled with Clock.AfterFunc.
type Timer interface {
	// Stop cancels the callback, false if it already fired or was stopped
	Stop() bool
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}
