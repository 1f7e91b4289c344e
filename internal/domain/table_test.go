package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_BestStealable(t *testing.T) {
	p1 := NewPlayer("1", nil, 23)
	p2 := NewPlayer("2", nil)
	table := Table{Board: BoardOf(21), Players: []*Player{p1, p2}, Current: 1}

	claim := table.BestStealable(23)
	require.True(t, claim.Stolen())
	assert.Equal(t, Tile(23), claim.Tile)
	assert.Same(t, p1, claim.Victim)

	table.Current = 0
	assert.True(t, table.BestStealable(23).Empty(), "the current player is never a victim")
	assert.True(t, table.BestStealable(24).Empty())
}

func TestTable_BestObtainable(t *testing.T) {
	victim := NewPlayer("victim", nil, 21, 25)
	me := NewPlayer("me", nil)
	table := Table{Board: BoardOf(23, 25, 30), Players: []*Player{victim, me}, Current: 1}

	claim := table.BestObtainable(25)
	assert.False(t, claim.Stolen(), "equal score keeps the board tile")
	assert.Equal(t, Tile(25), claim.Tile)

	table.Board = BoardOf(23, 30)
	claim = table.BestObtainable(25)
	assert.True(t, claim.Stolen(), "steal wins on a strictly higher score")
	assert.Equal(t, Tile(25), claim.Tile)

	table.Board = Board{}
	assert.Equal(t, Tile(25), table.BestObtainable(25).Tile)
	assert.True(t, table.BestObtainable(20).Empty())
}

func TestTurn_MovesStillPossible(t *testing.T) {
	turn := NewTurn()
	assert.True(t, turn.MovesStillPossible())

	turn.DiceLeft = 2
	turn.FacesUsed = FacesOf(Worm)
	assert.True(t, turn.MovesStillPossible())

	turn.DiceLeft = 0
	assert.False(t, turn.MovesStillPossible())

	turn.DiceLeft = 2
	turn.FacesUsed = FacesOf(1, 2, 3, 4, 5, 6)
	assert.False(t, turn.MovesStillPossible())
}

func TestTurn_Commit(t *testing.T) {
	turn := NewTurn()
	turn.Commit([]Dice{6, 6, 1, 2, 3, 4, 5, 5}, []Dice{6, 6})
	turn.Commit([]Dice{5, 5, 5, 1, 1, 2}, []Dice{5, 5, 5})

	assert.Equal(t, 3, turn.DiceLeft)
	assert.Equal(t, FacesOf(Worm, 5), turn.FacesUsed)
	assert.Equal(t, []Dice{5, Worm}, turn.FacesUsed.Faces())
	assert.Equal(t, 25, turn.Total())
	assert.True(t, turn.HasWorm())
	assert.False(t, turn.Finished())
}

func TestPlayer_Stack(t *testing.T) {
	p := NewPlayer("p", nil, 21)
	p.Push(30)
	assert.Equal(t, Tile(30), p.TopTile())
	assert.Equal(t, Tile(30), p.HighestTile())
	assert.Equal(t, 4, p.Score())

	tile, ok := p.Lose()
	require.True(t, ok)
	assert.Equal(t, Tile(30), tile)
	assert.Equal(t, []Tile{30}, p.TilesLost())
	assert.Equal(t, []Tile{21}, p.Tiles())

	p.Pop()
	_, ok = p.Pop()
	assert.False(t, ok)
	assert.Equal(t, NullTile, p.TopTile())
}
