package random

import "math/rand"

// Uniform draws candidate choices from a seeded math/rand source. The
// same seed replays the same guesses.
type Uniform struct {
	rng *rand.Rand
}

func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Choice returns one element of candidates with uniform probability.
// candidates must be non-empty.
func (u *Uniform) Choice(candidates []uint8) uint8 {
	return candidates[u.rng.Intn(len(candidates))]
}
