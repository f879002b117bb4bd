package repositories

import "errors"

// ErrNotFound is returned by delete operations when no row matched.
// Lookups return a nil entity instead.
var ErrNotFound = errors.New("record not found")
