package throw

import (
	"math/rand/v2"

	"github.com/kiryu-dev/heckmeck/internal/domain"
)

// random draws uniform dice from a seeded PCG. Not safe for concurrent use: every
// game gets its own source.
type random struct {
	rnd *rand.Rand
}

func NewRandom(seed uint64) *random {
	return &random{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *random) Draw(n int) ([]domain.Dice, error) {
	result := make([]domain.Dice, n)
	for i := range result {
		result[i] = domain.Dice(r.rnd.IntN(domain.FaceCount) + 1)
	}
	return result, nil
}
