package interpret

import "time"

//go:generate mockgen -source=clock.go -destination=mocks/clock.go -package=mocks

// Clock supplies the current time for the immediate-vs-deferred decision.
// It is the pipeline's only external input besides the request itself.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}
