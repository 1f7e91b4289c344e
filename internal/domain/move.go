package domain

type MoveKind byte

const (
	ThrowDice = MoveKind(iota)
	TakeTile
	StopTurn
	PlayFailed
)

func (k MoveKind) String() string {
	switch k {
	case ThrowDice:
		return "throw"
	case TakeTile:
		return "take"
	case StopTurn:
		return "stop"
	case PlayFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type TileSource byte

const (
	FromBoard = TileSource(iota)
	FromPlayer
)

// Move is one entry of a turn's history. Which fields are set depends on Kind:
//   - ThrowDice: Thrown and Selected
//   - TakeTile: Tile, From and, when stolen, Victim
//   - PlayFailed: Thrown holds the busting throw, nil when a stop could not claim
//   - StopTurn: nothing
type Move struct {
	Kind     MoveKind
	Thrown   []Dice
	Selected []Dice
	Tile     Tile
	From     TileSource
	Victim   string
}

func ThrowDiceMove(thrown, selected []Dice) Move {
	return Move{Kind: ThrowDice, Thrown: thrown, Selected: selected}
}

func TakeTileMove(claim Claim) Move {
	m := Move{Kind: TakeTile, Tile: claim.Tile, From: FromBoard}
	if claim.Stolen() {
		m.From = FromPlayer
		m.Victim = claim.Victim.Name
	}
	return m
}

func StopTurnMove() Move {
	return Move{Kind: StopTurn}
}

func PlayFailedMove(thrown []Dice) Move {
	return Move{Kind: PlayFailed, Thrown: thrown}
}

// Terminal reports whether the move ends a turn.
func (m Move) Terminal() bool {
	return m.Kind == StopTurn || m.Kind == PlayFailed
}

// TotalValue sums the scoring value of every committed die.
func TotalValue(moves []Move) int {
	total := 0
	for _, m := range moves {
		total += SumOf(m.Selected)
	}
	return total
}
