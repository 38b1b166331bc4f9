package repository

import "errors"

// ErrNotFound is returned by id-addressed operations when no document matches.
// Malformed ids identify no document and report the same way.
var ErrNotFound = errors.New("not found")
