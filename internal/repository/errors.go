package repository

import "errors"

var (
	// ErrDuplicate means the pre-insert uniqueness scan matched an existing row.
	ErrDuplicate = errors.New("already exists")
	// ErrNoRowsAffected means a write the caller expected to persist reported
	// zero affected rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
