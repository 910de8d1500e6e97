package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Int64 func() int64
	Bool  func() bool
}

// NewRandomizer seeds from the clock; Int64 covers the whole signed range,
// negatives included.
func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Int64: func() int64 {
			return int64(random.Uint64()) //nolint:gosec // wraps on purpose
		},
		Bool: func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
	}
}
