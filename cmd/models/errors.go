package models

import "errors"

// Failure kinds returned by the core. The request layer translates these
// into transport status codes; the core never writes HTTP responses itself.
var (
	ErrNotFound      = errors.New("not found")
	ErrListFull      = errors.New("media list is full")
	ErrPositionTaken = errors.New("position already taken")
	ErrDuplicate     = errors.New("already exists")
	ErrInvalid       = errors.New("invalid input")
)
