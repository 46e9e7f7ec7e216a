package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds     = errors.New("index out of range")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrUnknownShape    = errors.New("unknown shape")
	ErrUnknownFormat   = errors.New("unknown format")
	ErrInvalidArgument = errors.New("invalid argument")
)
