package order

import "errors"

var ErrInvalidUserID = errors.New("user id must be positive")
