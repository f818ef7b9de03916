package setup

import "errors"

var ErrInvalidSettings = errors.New("setup: invalid settings")
