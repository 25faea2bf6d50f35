package sakura

import "math/rand/v2"

// Source is the random stream a generation pass draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Int64() int64
	Float64() float64
}

const streamSalt = 0x5a6b7c8d9eaf1023

// NewStream returns a random stream whose output depends only on seed.
func NewStream(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), streamSalt))
}
