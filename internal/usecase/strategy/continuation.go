package strategy

import (
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/internal/usecase/outcome"
	"go.uber.org/zap"
)

// Continuer makes the keep-throwing decision after dice were set aside.
type Continuer interface {
	ShouldContinue(table domain.Table, turn *domain.Turn) bool
}

// firstOpportunity reports the tile currently in reach, or false while the turn has
// no worm or nothing can be taken yet.
func firstOpportunity(table domain.Table, turn *domain.Turn) (domain.Claim, bool) {
	if !turn.HasWorm() {
		return domain.Claim{}, false
	}
	claim := table.BestObtainable(turn.Total())
	if claim.Empty() {
		return domain.Claim{}, false
	}
	return claim, true
}

// StopAfterFirstTile keeps throwing until a tile can be claimed or stolen.
type StopAfterFirstTile struct{}

func (StopAfterFirstTile) ShouldContinue(table domain.Table, turn *domain.Turn) bool {
	_, ok := firstOpportunity(table, turn)
	return !ok
}

// CutOff returns the percentage the odds of improving must exceed for player.
type CutOff func(player *domain.Player) float64

func FixedCutOff(percent float64) CutOff {
	return func(*domain.Player) float64 {
		return percent
	}
}

// NothingToLose lowers the cut-off while the player owns no tile.
func NothingToLose(percent, empty float64) CutOff {
	return func(player *domain.Player) float64 {
		if player != nil && !player.HasTiles() {
			return empty
		}
		return percent
	}
}

// Odds keeps throwing while the share of throws of the remaining dice that reach a
// higher scoring tile exceeds the cut-off.
type Odds struct {
	tree     *outcome.Tree
	selector Selector
	cutOff   CutOff
	logger   *zap.Logger
}

func NewOdds(tree *outcome.Tree, selector Selector, cutOff CutOff, logger *zap.Logger) Odds {
	return Odds{
		tree:     tree,
		selector: selector,
		cutOff:   cutOff,
		logger:   logger,
	}
}

func (o Odds) ShouldContinue(table domain.Table, turn *domain.Turn) bool {
	current, ok := firstOpportunity(table, turn)
	if !ok {
		return true
	}
	if current.Tile.Score() >= domain.MaxScore {
		return false
	}
	percent := o.Percentage(table, turn, current)
	cutOff := o.cutOff(table.CurrentPlayer())
	o.logger.Debug("continuation odds",
		zap.Int("total", turn.Total()),
		zap.Int("dice left", turn.DiceLeft),
		zap.Stringer("tile", current.Tile),
		zap.Float64("percent", percent),
		zap.Float64("cut off", cutOff))
	return percent > cutOff
}

// Percentage is the share of all 6^k throws of the k remaining dice after which the
// selector reaches a tile scoring more than current.
func (o Odds) Percentage(table domain.Table, turn *domain.Turn, current domain.Claim) float64 {
	total, score := turn.Total(), current.Tile.Score()
	favorable, all := o.tree.Count(turn.DiceLeft, func(seq []domain.Dice) bool {
		face, n := o.selector.Pick(seq, turn.FacesUsed)
		if n == 0 {
			return false
		}
		next := table.BestObtainable(total + n*face.NumericValue())
		return next.Tile.Score() > score
	})
	return 100 * float64(favorable) / float64(all)
}
