package fun

import (
	"math/rand"
	"time"
)

// rng is the subset of math/rand the fun commands use
type rng interface {
	Intn(n int) int
}

// Feature handles the canned fun commands
type Feature struct {
	rand rng
}

// NewFeature creates a new fun feature instance
func NewFeature() *Feature {
	return &Feature{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Feature) pick(list []string) string {
	return list[f.rand.Intn(len(list))]
}
