package domain

import (
	"slices"
)

type Player struct {
	Name     string
	Strategy Strategy
	tilesWon []Tile
	turns    []*Turn
	lost     []Tile
}

func NewPlayer(name string, strategy Strategy, tiles ...Tile) *Player {
	return &Player{
		Name:     name,
		Strategy: strategy,
		tilesWon: slices.Clone(tiles),
	}
}

// TopTile is the most recently won tile, the only one that can be stolen or returned.
func (p *Player) TopTile() Tile {
	if len(p.tilesWon) == 0 {
		return NullTile
	}
	return p.tilesWon[len(p.tilesWon)-1]
}

func (p *Player) Push(t Tile) {
	p.tilesWon = append(p.tilesWon, t)
}

func (p *Player) Pop() (Tile, bool) {
	if len(p.tilesWon) == 0 {
		return NullTile, false
	}
	top := p.tilesWon[len(p.tilesWon)-1]
	p.tilesWon = p.tilesWon[:len(p.tilesWon)-1]
	return top, true
}

// Lose pops the top tile and records it as lost.
func (p *Player) Lose() (Tile, bool) {
	t, ok := p.Pop()
	if ok {
		p.lost = append(p.lost, t)
	}
	return t, ok
}

func (p *Player) Tiles() []Tile {
	return slices.Clone(p.tilesWon)
}

func (p *Player) TilesLost() []Tile {
	return slices.Clone(p.lost)
}

func (p *Player) HasTiles() bool {
	return len(p.tilesWon) > 0
}

func (p *Player) Score() int {
	return Score(p.tilesWon)
}

func (p *Player) HighestTile() Tile {
	if len(p.tilesWon) == 0 {
		return NullTile
	}
	return slices.Max(p.tilesWon)
}

func (p *Player) Record(turn *Turn) {
	p.turns = append(p.turns, turn)
}

func (p *Player) Turns() []*Turn {
	return p.turns
}

func (p *Player) StrategyID() string {
	if p.Strategy == nil {
		return ""
	}
	return p.Strategy.ID()
}
