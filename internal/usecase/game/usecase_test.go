package game

import (
	"testing"

	"github.com/kiryu-dev/heckmeck/internal/adapters/throw"
	"github.com/kiryu-dev/heckmeck/internal/config"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/internal/usecase/strategy"
	"github.com/kiryu-dev/heckmeck/internal/usecase/turn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func firstTile() domain.Strategy {
	return strategy.Compose(strategy.FirstTileID, strategy.HighestFace{}, strategy.StopAfterFirstTile{})
}

func scripted(t *testing.T, values ...int) domain.ThrowSource {
	t.Helper()
	source, err := throw.NewFixture(values...)
	require.NoError(t, err)
	return source
}

func newGame(t *testing.T, board domain.Board, source domain.ThrowSource, players ...*domain.Player) *game {
	t.Helper()
	g, err := New(board, players, source, turn.New(zap.NewNop()), zap.NewNop())
	require.NoError(t, err)
	return g
}

func TestPlayTurn_RotatesPlayers(t *testing.T) {
	p1 := domain.NewPlayer("1", firstTile())
	p2 := domain.NewPlayer("2", firstTile())
	source := scripted(t,
		1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
	)
	g := newGame(t, domain.BoardOf(21, 22), source, p1, p2)

	assert.Same(t, p1, g.CurrentPlayer())
	_, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Same(t, p2, g.CurrentPlayer())
	_, err = g.PlayTurn()
	require.NoError(t, err)
	assert.Same(t, p1, g.CurrentPlayer())
	assert.Len(t, p1.Turns(), 1)
	assert.Len(t, p2.Turns(), 1)
}

func TestPlay_StopsWhenBoardIsEmpty(t *testing.T) {
	p1 := domain.NewPlayer("1", firstTile())
	p2 := domain.NewPlayer("2", firstTile())
	source, err := throw.NewFixture(6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6)
	require.NoError(t, err)
	g := newGame(t, domain.BoardOf(23), source, p1, p2)

	report, err := g.Play()
	require.NoError(t, err)
	assert.Same(t, p2, g.CurrentPlayer())
	assert.Equal(t, []domain.Tile{23}, p1.Tiles())
	assert.Empty(t, p2.Tiles())
	assert.Equal(t, "1", report.Winner)
	assert.Equal(t, 1, report.Turns)
	assert.Empty(t, report.NeverClaimed)
	assert.Equal(t, 8, source.Remaining())
}

func TestPlayTurn_WinsHighestTileInReach(t *testing.T) {
	player := domain.NewPlayer("player1", firstTile())
	board, err := domain.NewBoard(domain.FirstTile, domain.LastTile)
	require.NoError(t, err)
	g := newGame(t, board, scripted(t, 6, 6, 6, 6, 6, 6, 6, 6), player)

	_, err = g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, []domain.Tile{36}, player.Tiles())
	assert.False(t, g.Board().Contains(36))
}

func TestBust_ReturnsTopTileAndTurnsOverHighest(t *testing.T) {
	player := domain.NewPlayer("player1", firstTile(), 21)
	source := scripted(t, 2, 2, 2, 2, 2, 2, 2, 1, 2)
	g := newGame(t, domain.BoardOf(22, 23), source, player)

	turn, err := g.PlayTurn()
	require.NoError(t, err)
	assert.True(t, turn.Failed())
	assert.True(t, player.Turns()[0].Failed())
	assert.Empty(t, player.Tiles())
	assert.Equal(t, []domain.Tile{21, 22}, g.Board().Tiles())
	assert.Equal(t, []domain.Tile{23}, g.Report().Removed)
	assert.Equal(t, []domain.Tile{21}, player.TilesLost())
}

func TestBust_ReturnedTileBecomesHighest(t *testing.T) {
	player := domain.NewPlayer("player1", firstTile(), 23)
	source := scripted(t, 2, 2, 2, 2, 2, 2, 2, 1, 2)
	g := newGame(t, domain.BoardOf(21, 22), source, player)

	_, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Empty(t, player.Tiles())
	assert.Equal(t, []domain.Tile{21, 22, 23}, g.Board().Tiles())
	assert.Empty(t, g.Report().Removed)
}

func TestBust_WithoutTilesChangesNothing(t *testing.T) {
	player := domain.NewPlayer("player1", firstTile())
	g := newGame(t, domain.BoardOf(22, 23), scripted(t, 1, 1, 1, 1, 1, 1, 1, 1), player)

	_, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, []domain.Tile{22, 23}, g.Board().Tiles())
	assert.Empty(t, player.TilesLost())
}

func TestPlayTurn_StealsFromOtherPlayer(t *testing.T) {
	thief := domain.NewPlayer("2", firstTile())
	owner := domain.NewPlayer("1", firstTile(), 25)
	g := newGame(t, domain.Board{}, scripted(t, 6, 6, 6, 6, 6, 5, 1, 2), thief, owner)

	_, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Empty(t, owner.Tiles())
	assert.Equal(t, []domain.Tile{25}, thief.Tiles())
	assert.True(t, g.Board().Empty())
}

func TestPlay_HitsTurnLimit(t *testing.T) {
	player := domain.NewPlayer("1", firstTile())
	board, err := domain.NewBoard(domain.FirstTile, domain.LastTile)
	require.NoError(t, err)
	script := make([]int, 0, 8*20)
	for i := 0; i < 20; i++ {
		script = append(script, 1, 1, 1, 1, 1, 1, 1, 1)
	}
	g, err := New(board, []*domain.Player{player}, scripted(t, script...), turn.New(zap.NewNop()), zap.NewNop(),
		WithMaxTurns(5), WithID("limited"))
	require.NoError(t, err)

	report, err := g.Play()
	assert.ErrorIs(t, err, ErrTurnLimit)
	assert.Equal(t, 5, report.Turns)
	assert.Equal(t, "limited", report.ID)
	assert.Empty(t, report.Winner)
}

func TestPlay_ThrowSourceFailureStopsGame(t *testing.T) {
	player := domain.NewPlayer("1", firstTile())
	g := newGame(t, domain.BoardOf(21), scripted(t, 1), player)
	_, err := g.Play()
	assert.ErrorIs(t, err, throw.ErrExhausted)
}

func TestNew_NeedsPlayers(t *testing.T) {
	_, err := New(domain.BoardOf(21), nil, scripted(t), turn.New(zap.NewNop()), zap.NewNop())
	assert.ErrorIs(t, err, errNoPlayers)
}

func TestReport_WinnerTieBreaks(t *testing.T) {
	low := domain.NewPlayer("low", firstTile(), 21, 22)
	high := domain.NewPlayer("high", firstTile(), 26)
	g := newGame(t, domain.Board{}, scripted(t), low, high)
	report := g.Report()
	assert.Equal(t, "high", report.Winner, "equal scores go to the highest tile")
	winner, ok := report.WinnerResult()
	require.True(t, ok)
	assert.Equal(t, 2, winner.Score)

	first := domain.NewPlayer("first", firstTile(), 25)
	second := domain.NewPlayer("second", firstTile(), 25)
	assert.Equal(t, "first", newGame(t, domain.Board{}, scripted(t), first, second).Report().Winner)
}

func TestPlay_RandomGamesConserveTiles(t *testing.T) {
	registry := strategy.NewRegistry(config.Tunables{CutOff: 50, NothingToLoseCutOff: 25}, zap.NewNop())
	ids := strategy.IDs()
	for seed := uint64(1); seed <= 30; seed++ {
		players := make([]*domain.Player, 0, len(ids))
		for _, id := range ids {
			s, err := registry.Get(id)
			require.NoError(t, err)
			players = append(players, domain.NewPlayer(id, s))
		}
		board, err := domain.NewBoard(domain.FirstTile, domain.LastTile)
		require.NoError(t, err)
		g := newGame(t, board, throw.NewRandom(seed), players...)

		report, err := g.Play()
		require.NoError(t, err, "seed %d", seed)
		require.True(t, g.Board().Empty())

		seen := make(map[domain.Tile]int)
		for _, p := range report.Players {
			for _, tile := range p.Tiles {
				seen[tile]++
			}
		}
		for _, tile := range report.Removed {
			seen[tile]++
		}
		require.Len(t, seen, board.Len(), "seed %d", seed)
		for tile, n := range seen {
			require.Equal(t, 1, n, "seed %d tile %d", seed, tile)
		}
		for _, tile := range report.NeverClaimed {
			require.Contains(t, report.Removed, tile, "a tile nobody won must have been turned over")
		}
	}
}
