package domain

// Turn is the transient state of one player's turn.
type Turn struct {
	Moves        []Move
	DiceLeft     int
	FacesUsed    FaceSet
	TileSelected Tile
	// Victim is the player the selected tile is stolen from, nil for a board tile.
	Victim *Player
}

func NewTurn() *Turn {
	return &Turn{DiceLeft: DiceCount}
}

// MovesStillPossible reports whether another throw is legal.
func (t *Turn) MovesStillPossible() bool {
	return t.DiceLeft > 0 && !t.FacesUsed.Full()
}

// Commit records a throw and the dice set aside from it.
func (t *Turn) Commit(thrown, selected []Dice) {
	t.Moves = append(t.Moves, ThrowDiceMove(thrown, selected))
	t.DiceLeft -= len(selected)
	t.FacesUsed = t.FacesUsed.With(selected[0])
}

func (t *Turn) Total() int {
	return TotalValue(t.Moves)
}

func (t *Turn) HasWorm() bool {
	return t.FacesUsed.Has(Worm)
}

func (t *Turn) Last() (Move, bool) {
	if len(t.Moves) == 0 {
		return Move{}, false
	}
	return t.Moves[len(t.Moves)-1], true
}

func (t *Turn) Finished() bool {
	m, ok := t.Last()
	return ok && m.Terminal()
}

func (t *Turn) Stopped() bool {
	m, ok := t.Last()
	return ok && m.Kind == StopTurn
}

func (t *Turn) Failed() bool {
	m, ok := t.Last()
	return ok && m.Kind == PlayFailed
}

// Taken returns the TakeTile move of a stopped turn.
func (t *Turn) Taken() (Move, bool) {
	for _, m := range t.Moves {
		if m.Kind == TakeTile {
			return m, true
		}
	}
	return Move{}, false
}
