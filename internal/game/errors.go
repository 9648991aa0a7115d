package game

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrEmptySquare  = errors.New("empty square")
	ErrWrongColor   = errors.New("piece belongs to the other side")
)
