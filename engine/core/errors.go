package core

import (
	"errors"
)

var ErrInvalidLogLevel = errors.New("invalid log level")
