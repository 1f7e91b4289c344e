package turn

import (
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type useCase struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) useCase {
	return useCase{
		logger: logger,
	}
}

// Play runs the current player's turn to completion. The last move of the returned
// turn is always StopTurn or PlayFailed. Neither the board nor any player is changed:
// applying the outcome is up to the caller.
func (u useCase) Play(table domain.Table, source domain.ThrowSource) (*domain.Turn, error) {
	player := table.CurrentPlayer()
	if player == nil || player.Strategy == nil {
		return nil, errNoPlayer
	}
	strategy := player.Strategy
	turn := domain.NewTurn()
	for !turn.Finished() {
		if strategy.DecideMove(table, turn) == domain.StopAndClaim {
			u.stop(table, turn, player, true)
			break
		}
		thrown, err := source.Draw(turn.DiceLeft)
		if err != nil {
			return turn, errors.WithMessage(err, "throw dice")
		}
		selected := strategy.SelectDice(thrown, turn)
		if err := validateSelection(thrown, selected, turn.FacesUsed); err != nil {
			u.logger.Warn("illegal dice selection treated as bust",
				zap.String("player", player.Name),
				zap.String("strategy", strategy.ID()),
				zap.Stringers("thrown", thrown),
				zap.Stringers("selected", selected),
				zap.Error(err))
			selected = nil
		}
		if len(selected) == 0 {
			turn.Moves = append(turn.Moves, domain.PlayFailedMove(thrown))
			break
		}
		turn.Commit(thrown, selected)
		u.logger.Debug("dice set aside",
			zap.String("player", player.Name),
			zap.Stringers("thrown", thrown),
			zap.Stringers("selected", selected),
			zap.Int("total", turn.Total()),
			zap.Int("dice left", turn.DiceLeft),
			zap.Stringers("faces used", turn.FacesUsed.Faces()))
		if !turn.MovesStillPossible() {
			u.stop(table, turn, player, false)
			break
		}
		if !strategy.ShouldContinue(table, turn) {
			u.stop(table, turn, player, true)
		}
	}
	return turn, nil
}

// stop claims the best obtainable tile or fails the turn when there is none.
func (u useCase) stop(table domain.Table, turn *domain.Turn, player *domain.Player, voluntary bool) {
	var claim domain.Claim
	if turn.HasWorm() {
		claim = table.BestObtainable(turn.Total())
	}
	if claim.Empty() {
		if voluntary {
			u.logger.Warn("strategy stopped with nothing to claim",
				zap.String("player", player.Name),
				zap.String("strategy", player.Strategy.ID()),
				zap.Int("total", turn.Total()),
				zap.Bool("worm", turn.HasWorm()))
		}
		turn.Moves = append(turn.Moves, domain.PlayFailedMove(nil))
		return
	}
	turn.TileSelected = claim.Tile
	turn.Victim = claim.Victim
	turn.Moves = append(turn.Moves, domain.TakeTileMove(claim), domain.StopTurnMove())
}

func validateSelection(thrown, selected []domain.Dice, used domain.FaceSet) error {
	if len(selected) == 0 {
		return nil
	}
	face := selected[0]
	for _, d := range selected[1:] {
		if d != face {
			return errMixedFaces
		}
	}
	if used.Has(face) {
		return errors.WithMessagef(errFaceUsed, "face %s", face)
	}
	shown := 0
	for _, d := range thrown {
		if d == face {
			shown++
		}
	}
	if shown != len(selected) {
		return errors.WithMessagef(errPartialFace, "%d of %d dice showing %s", len(selected), shown, face)
	}
	return nil
}
