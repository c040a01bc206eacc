package runner

import "math/rand"

// Source is the randomness the loop draws from.
// *math/rand.Rand satisfies it; tests supply scripted sequences.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a seeded Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniformly drawn integer in [min, max].
func between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}
