package seed

import (
	"math/rand/v2"
	"time"
)

// Offsets and ratings drawn by the random policy
const (
	MinDayOffset = 1
	MaxDayOffset = 10
	MinRating    = 4
	MaxRating    = 5
)

// Policy supplies every non-deterministic choice the orchestrator makes.
// Idempotency is keyed on appointment status, so which practitioner or
// date gets picked on a later run does not matter.
type Policy interface {
	// PickPractitioner returns an index in [0, n)
	PickPractitioner(n int) int
	// PastOffsetDays returns how many days before Now the completed appointment is
	PastOffsetDays() int
	// FutureOffsetDays returns how many days after Now the booked appointment is
	FutureOffsetDays() int
	Rating() int
	Now() time.Time
}

type randomPolicy struct{}

// NewRandomPolicy picks practitioners uniformly and offsets uniformly in [1, 10] days
func NewRandomPolicy() Policy {
	return randomPolicy{}
}

func (randomPolicy) PickPractitioner(n int) int {
	return rand.IntN(n)
}

func (randomPolicy) PastOffsetDays() int {
	return MinDayOffset + rand.IntN(MaxDayOffset-MinDayOffset+1)
}

func (randomPolicy) FutureOffsetDays() int {
	return MinDayOffset + rand.IntN(MaxDayOffset-MinDayOffset+1)
}

func (randomPolicy) Rating() int {
	return MinRating + rand.IntN(MaxRating-MinRating+1)
}

func (randomPolicy) Now() time.Time {
	return time.Now()
}
