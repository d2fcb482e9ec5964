package repository

import "errors"

// ErrNotFound is wrapped by every lookup of a missing row.
var ErrNotFound = errors.New("not found")
