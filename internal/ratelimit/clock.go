package ratelimit

import "time"

// Clock provides the current time in whole seconds since the Unix epoch.
// It is injected so window arithmetic can be tested deterministically.
type Clock interface {
	Now() int64
}

type systemClock struct{}

func (systemClock) Now() int64 {
	return time.Now().Unix()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}
