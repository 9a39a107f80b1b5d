// Package rng provides the deterministic random source used by every generation step.
package rng

import "math"

const (
	modulus    = 2147483647
	multiplier = 16807
)

// Source is the draw interface consumed by generation code.
type Source interface {
	// Next returns a float in (0, 1).
	Next() float64
	// NextInt returns an int in [min, max).
	NextInt(min, max int) int
}

// Random is a Lehmer (Park-Miller) generator. It is not safe for concurrent use;
// each generation run owns its own instance.
type Random struct {
	seed int64
}

// New creates a generator, normalizing seed into [1, 2^31-2].
func New(seed int64) *Random {
	s := seed % modulus
	if s <= 0 {
		s += modulus - 1
	}
	return &Random{seed: s}
}

// State returns the current internal seed.
func (r *Random) State() int64 {
	return r.seed
}

// Next advances the recurrence and returns seed/modulus.
func (r *Random) Next() float64 {
	r.seed = r.seed * multiplier % modulus
	return float64(r.seed) / modulus
}

// NextInt returns floor(Next()*(max-min)) + min.
// The result is unspecified when max <= min.
func (r *Random) NextInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min))) + min
}

// Chance reports whether a draw falls below p.
func Chance(r Source, p float64) bool {
	return r.Next() < p
}

// Intn returns floor(Next()*n).
func Intn(r Source, n int) int {
	return int(math.Floor(r.Next() * float64(n)))
}

// Select returns a random element of items. ok is false for an empty slice.
func Select[T any](r Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[r.NextInt(0, len(items))], true
}

// Shuffle permutes items in place with a Fisher-Yates pass driven by r.
func Shuffle[T any](r Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := Intn(r, i+1)
		items[i], items[j] = items[j], items[i]
	}
}
