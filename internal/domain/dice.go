package domain

import (
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

const (
	FaceCount = 6
	// DiceCount is the number of dice a turn starts with.
	DiceCount = 8
)

// Dice is a single face value in 1..6. Face 6 is the worm.
type Dice uint8

const Worm = Dice(6)

func NewDice(v int) (Dice, error) {
	if v < 1 || v > FaceCount {
		return 0, errors.WithMessagef(ErrIllegalArgument, "dice value %d is out of range 1..%d", v, FaceCount)
	}
	return Dice(v), nil
}

// NumericValue is the scoring value of the face: worms count 5.
func (d Dice) NumericValue() int {
	if d == Worm {
		return 5
	}
	return int(d)
}

func (d Dice) String() string {
	if d == Worm {
		return "worm"
	}
	return strconv.Itoa(int(d))
}

func SumOf(dice []Dice) int {
	total := 0
	for _, d := range dice {
		total += d.NumericValue()
	}
	return total
}

// FaceSet is the set of face values committed during a turn.
type FaceSet uint8

func (s FaceSet) Has(d Dice) bool {
	return s&(1<<d) != 0
}

func (s FaceSet) With(d Dice) FaceSet {
	return s | 1<<d
}

func (s FaceSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

func (s FaceSet) Full() bool {
	return s.Len() >= FaceCount
}

func (s FaceSet) Faces() []Dice {
	faces := make([]Dice, 0, s.Len())
	for d := Dice(1); d <= FaceCount; d++ {
		if s.Has(d) {
			faces = append(faces, d)
		}
	}
	return faces
}

func FacesOf(dice ...Dice) FaceSet {
	var s FaceSet
	for _, d := range dice {
		s = s.With(d)
	}
	return s
}
