package strategy

import (
	"slices"
	"sync"

	"github.com/kiryu-dev/heckmeck/internal/config"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/internal/usecase/outcome"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	FirstTileID         = "first-tile"
	FirstTileHighSumID  = "first-tile-high-sum"
	OddsID              = "odds"
	OddsHighSumID       = "odds-high-sum"
	OddsNothingToLoseID = "odds-nothing-to-lose"
)

// IDs lists every strategy the registry can build.
func IDs() []string {
	return []string{FirstTileID, FirstTileHighSumID, OddsID, OddsHighSumID, OddsNothingToLoseID}
}

// Registry builds each strategy once and hands out the same instance to every
// player that uses it. The outcome tree is built on the first odds based strategy.
type Registry struct {
	tunables   config.Tunables
	strategies map[string]domain.Strategy
	tree       func() (*outcome.Tree, error)
	mu         *sync.Mutex
	logger     *zap.Logger
}

func NewRegistry(tunables config.Tunables, logger *zap.Logger) *Registry {
	return &Registry{
		tunables:   tunables,
		strategies: make(map[string]domain.Strategy),
		tree: sync.OnceValues(func() (*outcome.Tree, error) {
			return outcome.New(domain.DiceCount, logger)
		}),
		mu:     &sync.Mutex{},
		logger: logger,
	}
}

func (r *Registry) Get(id string) (domain.Strategy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.strategies[id]; ok {
		return s, nil
	}
	s, err := r.build(id)
	if err != nil {
		return nil, err
	}
	r.strategies[id] = s
	r.logger.Debug("strategy ready", zap.String("id", id))
	return s, nil
}

func (r *Registry) build(id string) (domain.Strategy, error) {
	switch id {
	case FirstTileID:
		return Compose(id, HighestFace{}, StopAfterFirstTile{}), nil
	case FirstTileHighSumID:
		return Compose(id, HighestTotal{}, StopAfterFirstTile{}), nil
	}
	if !slices.Contains(IDs(), id) {
		return nil, errors.WithMessagef(ErrUnknownStrategy, "'%s'", id)
	}
	tree, err := r.tree()
	if err != nil {
		return nil, errors.WithMessage(err, "build outcome tree")
	}
	cutOff := FixedCutOff(r.tunables.CutOff)
	switch id {
	case OddsHighSumID:
		return Compose(id, HighestTotal{}, NewOdds(tree, HighestTotal{}, cutOff, r.logger)), nil
	case OddsNothingToLoseID:
		cutOff = NothingToLose(r.tunables.CutOff, r.tunables.NothingToLoseCutOff)
	}
	return Compose(id, HighestFace{}, NewOdds(tree, HighestFace{}, cutOff, r.logger)), nil
}
