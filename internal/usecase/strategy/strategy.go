package strategy

import (
	"github.com/kiryu-dev/heckmeck/internal/domain"
)

// composed assembles a strategy from a dice selector and a continuation decision.
// Every reference strategy throws the remaining dice as its next move.
type composed struct {
	id        string
	selector  Selector
	continuer Continuer
}

func Compose(id string, selector Selector, continuer Continuer) domain.Strategy {
	return &composed{
		id:        id,
		selector:  selector,
		continuer: continuer,
	}
}

func (s *composed) ID() string {
	return s.id
}

func (s *composed) DecideMove(_ domain.Table, _ *domain.Turn) domain.MoveIntent {
	return domain.ThrowRemaining
}

func (s *composed) SelectDice(thrown []domain.Dice, turn *domain.Turn) []domain.Dice {
	return Select(s.selector, thrown, turn.FacesUsed)
}

func (s *composed) ShouldContinue(table domain.Table, turn *domain.Turn) bool {
	return s.continuer.ShouldContinue(table, turn)
}
