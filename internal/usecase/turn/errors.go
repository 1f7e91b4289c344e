package turn

import (
	"github.com/pkg/errors"
)

var (
	errNoPlayer    = errors.New("no player to move")
	errMixedFaces  = errors.New("selected dice show different faces")
	errFaceUsed    = errors.New("face already set aside this turn")
	errPartialFace = errors.New("selection must take every die of its face")
)
