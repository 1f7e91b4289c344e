package domain

import (
	"slices"

	"github.com/pkg/errors"
)

// Board holds the tiles still on the table in ascending order without duplicates.
// Board values are never mutated in place: With and Without return new boards.
type Board struct {
	tiles []Tile
}

func NewBoard(first, last Tile) (Board, error) {
	if first > last {
		return Board{}, errors.WithMessagef(ErrIllegalArgument, "board range %d..%d", first, last)
	}
	if first <= NullTile {
		return Board{}, errors.WithMessagef(ErrIllegalArgument, "board must start above %d", NullTile)
	}
	tiles := make([]Tile, 0, last-first+1)
	for t := first; t <= last; t++ {
		tiles = append(tiles, t)
	}
	return Board{tiles: tiles}, nil
}

func BoardOf(tiles ...Tile) Board {
	sorted := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t > NullTile {
			sorted = append(sorted, t)
		}
	}
	slices.Sort(sorted)
	return Board{tiles: slices.Compact(sorted)}
}

func (b Board) Tiles() []Tile {
	return slices.Clone(b.tiles)
}

func (b Board) Len() int {
	return len(b.tiles)
}

func (b Board) Empty() bool {
	return len(b.tiles) == 0
}

func (b Board) Contains(t Tile) bool {
	_, ok := slices.BinarySearch(b.tiles, t)
	return ok
}

// Highest returns NullTile for an empty board.
func (b Board) Highest() Tile {
	if len(b.tiles) == 0 {
		return NullTile
	}
	return b.tiles[len(b.tiles)-1]
}

func (b Board) Without(t Tile) Board {
	i, ok := slices.BinarySearch(b.tiles, t)
	if !ok {
		return b
	}
	tiles := make([]Tile, 0, len(b.tiles)-1)
	tiles = append(tiles, b.tiles[:i]...)
	tiles = append(tiles, b.tiles[i+1:]...)
	return Board{tiles: tiles}
}

func (b Board) With(t Tile) Board {
	i, ok := slices.BinarySearch(b.tiles, t)
	if ok || t <= NullTile {
		return b
	}
	tiles := make([]Tile, 0, len(b.tiles)+1)
	tiles = append(tiles, b.tiles[:i]...)
	tiles = append(tiles, t)
	tiles = append(tiles, b.tiles[i:]...)
	return Board{tiles: tiles}
}

// BestClaimable returns the highest tile whose value does not exceed total.
func (b Board) BestClaimable(total int) Tile {
	best := NullTile
	for _, t := range b.tiles {
		if int(t) > total {
			break
		}
		best = t
	}
	return best
}
