package game

import (
	"github.com/google/uuid"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultMaxTurns = 10000

type Option func(g *game)

func WithMaxTurns(n int) Option {
	return func(g *game) {
		g.maxTurns = n
	}
}

func WithID(id string) Option {
	return func(g *game) {
		g.id = id
	}
}

// game owns its board and players for the lifetime of one play-through. Players
// move strictly in rotation, so nothing here is safe for concurrent use.
type game struct {
	id        string
	board     domain.Board
	initial   []domain.Tile
	players   []*domain.Player
	current   int
	source    domain.ThrowSource
	turns     domain.TurnUseCase
	maxTurns  int
	turnCount int
	removed   []domain.Tile
	claimed   map[domain.Tile]struct{}
	logger    *zap.Logger
}

func New(board domain.Board, players []*domain.Player, source domain.ThrowSource, turns domain.TurnUseCase,
	logger *zap.Logger, opts ...Option) (*game, error) {
	if len(players) == 0 {
		return nil, errNoPlayers
	}
	g := &game{
		id:       uuid.NewString(),
		board:    board,
		initial:  board.Tiles(),
		players:  players,
		source:   source,
		turns:    turns,
		maxTurns: defaultMaxTurns,
		claimed:  make(map[domain.Tile]struct{}),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("game uuid", g.id))
	return g, nil
}

// Play runs turns until the board is empty.
func (g *game) Play() (domain.GameReport, error) {
	for !g.board.Empty() {
		if g.turnCount >= g.maxTurns {
			return g.Report(), errors.WithMessagef(ErrTurnLimit, "%d turns", g.turnCount)
		}
		if _, err := g.PlayTurn(); err != nil {
			return g.Report(), errors.WithMessage(err, "play turn")
		}
	}
	report := g.Report()
	g.logger.Debug("game finished", zap.String("winner", report.Winner), zap.Int("turns", report.Turns))
	return report, nil
}

// PlayTurn plays the current player's turn, applies its outcome and passes the dice on.
func (g *game) PlayTurn() (*domain.Turn, error) {
	player := g.CurrentPlayer()
	turn, err := g.turns.Play(g.Table(), g.source)
	if err != nil {
		return nil, errors.WithMessagef(err, "turn of player '%s'", player.Name)
	}
	switch {
	case turn.Stopped():
		g.award(player, turn)
	case turn.Failed():
		g.bust(player)
	}
	player.Record(turn)
	g.turnCount++
	g.current = (g.current + 1) % len(g.players)
	return turn, nil
}

func (g *game) CurrentPlayer() *domain.Player {
	return g.players[g.current]
}

func (g *game) Board() domain.Board {
	return g.board
}

func (g *game) Table() domain.Table {
	return domain.Table{
		Board:   g.board,
		Players: g.players,
		Current: g.current,
	}
}

func (g *game) award(player *domain.Player, turn *domain.Turn) {
	tile := turn.TileSelected
	if tile.IsNull() {
		g.logger.Warn("stopped turn selected no tile", zap.String("player", player.Name))
		return
	}
	if victim := turn.Victim; victim != nil {
		if top, _ := victim.Pop(); top != tile {
			g.logger.Warn("stolen tile is not the victim's top tile",
				zap.String("player", player.Name),
				zap.String("victim", victim.Name),
				zap.Stringer("tile", tile),
				zap.Stringer("top", top))
		}
		g.logger.Debug("tile stolen",
			zap.String("player", player.Name), zap.String("victim", victim.Name), zap.Stringer("tile", tile))
	} else {
		if !g.board.Contains(tile) {
			g.logger.Warn("claimed tile is not on the board", zap.String("player", player.Name), zap.Stringer("tile", tile))
		}
		g.board = g.board.Without(tile)
		g.logger.Debug("tile claimed", zap.String("player", player.Name), zap.Stringer("tile", tile))
	}
	g.claimed[tile] = struct{}{}
	player.Push(tile)
}

// bust returns the player's top tile to the board. A higher tile on the board is
// turned over and leaves the game.
func (g *game) bust(player *domain.Player) {
	tile, ok := player.Lose()
	if !ok {
		return
	}
	if highest := g.board.Highest(); highest > tile {
		g.board = g.board.Without(highest)
		g.removed = append(g.removed, highest)
	}
	g.board = g.board.With(tile)
	g.logger.Debug("tile returned", zap.String("player", player.Name), zap.Stringer("tile", tile))
}

func (g *game) Report() domain.GameReport {
	report := domain.GameReport{
		ID:      g.id,
		Turns:   g.turnCount,
		Removed: append([]domain.Tile(nil), g.removed...),
		Players: make([]domain.PlayerResult, 0, len(g.players)),
	}
	for _, tile := range g.initial {
		if _, ok := g.claimed[tile]; !ok {
			report.NeverClaimed = append(report.NeverClaimed, tile)
		}
	}
	var winner *domain.Player
	for _, p := range g.players {
		busts := 0
		for _, turn := range p.Turns() {
			if turn.Failed() {
				busts++
			}
		}
		report.Players = append(report.Players, domain.PlayerResult{
			Name:      p.Name,
			Strategy:  p.StrategyID(),
			Tiles:     p.Tiles(),
			Score:     p.Score(),
			TilesLost: p.TilesLost(),
			Turns:     len(p.Turns()),
			Busts:     busts,
		})
		if beats(p, winner) {
			winner = p
		}
	}
	if winner != nil && winner.HasTiles() {
		report.Winner = winner.Name
	}
	return report
}

// beats orders players by score, then by their highest tile. Earlier players keep ties.
func beats(p, best *domain.Player) bool {
	if best == nil {
		return true
	}
	if p.Score() != best.Score() {
		return p.Score() > best.Score()
	}
	return p.HighestTile() > best.HighestTile()
}
