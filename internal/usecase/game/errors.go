package game

import (
	"github.com/pkg/errors"
)

var (
	ErrTurnLimit = errors.New("game exceeded the turn limit")
	errNoPlayers = errors.New("a game needs at least one player")
)
