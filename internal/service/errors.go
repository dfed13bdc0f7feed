package service

import "errors"

var (
	// ErrNotFound covers both missing entities and entities owned by
	// someone else; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrInvalidArgument = errors.New("invalid argument")
)
