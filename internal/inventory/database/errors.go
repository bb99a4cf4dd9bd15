package database

import "errors"

var (
	// ErrNotFound is returned when a record with the requested key does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInUse is returned when deleting a record that other records still reference
	ErrInUse = errors.New("record is referenced by other records")
)
