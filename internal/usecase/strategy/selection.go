package strategy

import (
	"github.com/kiryu-dev/heckmeck/internal/domain"
)

// Selector decides which face to set aside from a throw. Pick returns the face and
// the number of dice showing it, or a zero count when no unused face was thrown.
type Selector interface {
	Pick(thrown []domain.Dice, used domain.FaceSet) (domain.Dice, int)
}

type faceCounts [domain.FaceCount + 1]int

func countFaces(thrown []domain.Dice) faceCounts {
	var counts faceCounts
	for _, d := range thrown {
		counts[d]++
	}
	return counts
}

// HighestFace takes all dice of the highest unused face.
type HighestFace struct{}

func (HighestFace) Pick(thrown []domain.Dice, used domain.FaceSet) (domain.Dice, int) {
	counts := countFaces(thrown)
	for face := domain.Dice(domain.FaceCount); face >= 1; face-- {
		if counts[face] > 0 && !used.Has(face) {
			return face, counts[face]
		}
	}
	return 0, 0
}

// HighestTotal takes the unused face whose dice add up to the most. On a tie the face
// seen first in the throw wins.
type HighestTotal struct{}

func (HighestTotal) Pick(thrown []domain.Dice, used domain.FaceSet) (domain.Dice, int) {
	counts := countFaces(thrown)
	var (
		best     domain.Dice
		bestSum  int
		consider domain.FaceSet
	)
	for _, d := range thrown {
		if used.Has(d) || consider.Has(d) {
			continue
		}
		consider = consider.With(d)
		if sum := counts[d] * d.NumericValue(); sum > bestSum {
			best, bestSum = d, sum
		}
	}
	if bestSum == 0 {
		return 0, 0
	}
	return best, counts[best]
}

// Select returns the dice the selector sets aside from thrown.
func Select(s Selector, thrown []domain.Dice, used domain.FaceSet) []domain.Dice {
	face, n := s.Pick(thrown, used)
	if n == 0 {
		return nil
	}
	selected := make([]domain.Dice, 0, n)
	for _, d := range thrown {
		if d == face {
			selected = append(selected, d)
		}
	}
	return selected
}
