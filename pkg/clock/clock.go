package clock

import "time"

//go:generate moq -rm -out clock_mocks.go . Clock

// Clock abstracts time for lifecycle checks and tests.
type Clock interface {
	Now() time.Time
}

// New returns a Clock backed by time.Now in UTC.
func New() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}
