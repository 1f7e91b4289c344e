package outcome

import (
	"github.com/pkg/errors"
)

var errDepthTooLarge = errors.New("outcome tree depth too large")
