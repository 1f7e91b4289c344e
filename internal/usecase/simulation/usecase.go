package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/kiryu-dev/heckmeck/internal/adapters/throw"
	"github.com/kiryu-dev/heckmeck/internal/config"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/internal/usecase/game"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StrategyRegistry interface {
	Get(id string) (domain.Strategy, error)
}

type useCase struct {
	cfg      config.Config
	registry StrategyRegistry
	turns    domain.TurnUseCase
	finished *atomic.Int64
	played   *atomic.Int64
	logger   *zap.Logger
}

func New(cfg config.Config, registry StrategyRegistry, turns domain.TurnUseCase, logger *zap.Logger) *useCase {
	return &useCase{
		cfg:      cfg,
		registry: registry,
		turns:    turns,
		finished: atomic.NewInt64(0),
		played:   atomic.NewInt64(0),
		logger:   logger,
	}
}

// Run plays the configured number of independent games on a bounded pool of
// goroutines. Every finished game is published to sink when it is not nil, and the
// batch summary last. Cancelling ctx stops scheduling new games.
func (u *useCase) Run(ctx context.Context, sink domain.FeedPublisher) (domain.Summary, error) {
	seed := u.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	u.logger.Info("starting simulation",
		zap.Int("games", u.cfg.Games),
		zap.Int("players", u.cfg.Players),
		zap.Strings("strategies", u.cfg.Strategies),
		zap.Uint64("seed", seed))
	start := time.Now()
	reports := make([]domain.GameReport, u.cfg.Games)
	errGroup, groupCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(u.cfg.Workers)
	progressEvery := int64(max(1, u.cfg.Games/10))
	for i := range reports {
		if groupCtx.Err() != nil {
			break
		}
		errGroup.Go(func() error {
			report, err := u.playOne(i, seed+uint64(i))
			switch {
			case errors.Is(err, game.ErrTurnLimit):
				u.logger.Warn("game abandoned", zap.Int("game", i), zap.String("game uuid", report.ID), zap.Error(err))
			case err != nil:
				return errors.WithMessagef(err, "game %d", i)
			}
			reports[i] = report
			u.played.Add(int64(report.Turns))
			if done := u.finished.Inc(); done%progressEvery == 0 {
				u.logger.Info("simulation progress", zap.Int64("games", done), zap.Int64("turns", u.played.Load()))
			}
			if sink != nil {
				sink.Publish(domain.Message{Type: domain.GameFinished, Payload: report})
			}
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return domain.Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Summary{}, errors.WithMessage(err, "simulation interrupted")
	}
	summary := Aggregate(reports)
	u.logger.Info("simulation finished",
		zap.Int("games", summary.Games),
		zap.Float64("avg turns", summary.AvgTurns),
		zap.Duration("took", time.Since(start)))
	if sink != nil {
		sink.Publish(domain.Message{Type: domain.BatchFinished, Payload: summary})
	}
	return summary, nil
}

// Finished is the number of games completed so far.
func (u *useCase) Finished() int64 {
	return u.finished.Load()
}

func (u *useCase) playOne(index int, seed uint64) (domain.GameReport, error) {
	board, err := domain.NewBoard(domain.Tile(u.cfg.Tiles.First), domain.Tile(u.cfg.Tiles.Last))
	if err != nil {
		return domain.GameReport{}, errors.WithMessage(err, "new board")
	}
	players, err := u.seat(index)
	if err != nil {
		return domain.GameReport{}, err
	}
	g, err := game.New(board, players, throw.NewRandom(seed), u.turns, u.logger, game.WithMaxTurns(u.cfg.MaxTurns))
	if err != nil {
		return domain.GameReport{}, errors.WithMessage(err, "new game")
	}
	return g.Play()
}

// seat creates fresh players for one game. Strategies are assigned to seats round
// robin and the starting seat rotates from game to game.
func (u *useCase) seat(index int) ([]*domain.Player, error) {
	players := make([]*domain.Player, u.cfg.Players)
	for i := range players {
		id := u.cfg.Strategies[i%len(u.cfg.Strategies)]
		s, err := u.registry.Get(id)
		if err != nil {
			return nil, errors.WithMessagef(err, "seat %d", i+1)
		}
		players[i] = domain.NewPlayer(fmt.Sprintf("player%d", i+1), s)
	}
	shift := index % len(players)
	return append(players[shift:], players[:shift]...), nil
}
