package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist. Callers
// match it with errors.Is; implementations wrap it with the record kind.
var ErrNotFound = errors.New("not found")
