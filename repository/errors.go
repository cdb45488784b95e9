package repository

import "errors"

var (
	// ErrNotFound is returned when a question, answer or notification id
	// does not resolve to an existing record.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthor is returned when an operation is restricted to the
	// author of the target record.
	ErrNotAuthor = errors.New("not the author")
)
