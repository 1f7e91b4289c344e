package domain

import (
	"strconv"
)

// Tile is a claimable tile identified by its value.
type Tile int

// NullTile means no tile was selected.
const NullTile = Tile(0)

const (
	FirstTile = Tile(21)
	LastTile  = Tile(36)
	MaxScore  = 4
)

// Score is the number of worms printed on the tile.
func (t Tile) Score() int {
	switch {
	case t <= NullTile:
		return 0
	case t < 25:
		return 1
	case t < 29:
		return 2
	case t < 33:
		return 3
	default:
		return 4
	}
}

func (t Tile) IsNull() bool {
	return t == NullTile
}

func (t Tile) String() string {
	return strconv.Itoa(int(t))
}

func Score(tiles []Tile) int {
	total := 0
	for _, t := range tiles {
		total += t.Score()
	}
	return total
}
