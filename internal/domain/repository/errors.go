package repository

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict signals a uniqueness violation (duplicate user email).
	ErrConflict = errors.New("record already exists")
)
