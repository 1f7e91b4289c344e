package domain

import (
	"github.com/pkg/errors"
)

var ErrIllegalArgument = errors.New("illegal argument")
