package strategy

import (
	"github.com/pkg/errors"
)

var ErrUnknownStrategy = errors.New("unknown strategy")
