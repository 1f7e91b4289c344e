package throw

import (
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/pkg/errors"
)

var ErrExhausted = errors.New("scripted throws exhausted")

// fixture hands out a fixed script of dice in order.
type fixture struct {
	script []domain.Dice
	next   int
}

// NewFixture rejects any scripted value that is not a die face.
func NewFixture(values ...int) (*fixture, error) {
	script := make([]domain.Dice, len(values))
	for i, v := range values {
		d, err := domain.NewDice(v)
		if err != nil {
			return nil, errors.WithMessagef(err, "scripted die %d", i)
		}
		script[i] = d
	}
	return &fixture{script: script}, nil
}

func (f *fixture) Draw(n int) ([]domain.Dice, error) {
	if f.next+n > len(f.script) {
		return nil, errors.WithMessagef(ErrExhausted, "need %d dice, %d left", n, f.Remaining())
	}
	result := make([]domain.Dice, n)
	copy(result, f.script[f.next:f.next+n])
	f.next += n
	return result, nil
}

func (f *fixture) Remaining() int {
	return len(f.script) - f.next
}
