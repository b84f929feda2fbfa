// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so every random choice in a session
// comes from one reproducible source.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed.
// A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [-half, half).
func (s *PRNGService) Range(half float64) float64 {
	return (s.rng.Float64()*2 - 1) * half
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Read fills p with random bytes. It lets the service act as the entropy
// source for uuid generation.
func (s *PRNGService) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// ChooseWeighted performs a weighted pick and returns the chosen index.
// It sums the weights, draws a point in that range and walks the table to the
// entry that owns the point. An empty table returns -1.
func (s *PRNGService) ChooseWeighted(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	r := s.rng.Float64() * total
	upto := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}

// Pick returns a uniformly random element of items.
func Pick[T any](s *PRNGService, items []T) T {
	return items[s.Intn(len(items))]
}
