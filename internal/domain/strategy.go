package domain

type MoveIntent byte

const (
	ThrowRemaining = MoveIntent(iota)
	StopAndClaim
)

// Strategy is consulted by the turn machine at each decision point.
// Implementations must not mutate the table or the turn.
type Strategy interface {
	ID() string
	DecideMove(table Table, turn *Turn) MoveIntent
	SelectDice(thrown []Dice, turn *Turn) []Dice
	ShouldContinue(table Table, turn *Turn) bool
}

// ThrowSource produces independent uniformly distributed dice.
type ThrowSource interface {
	Draw(n int) ([]Dice, error)
}
