package t2048

import "errors"

var (
	// ErrCellOccupied is returned when a tile is added to a cell that already holds one.
	ErrCellOccupied = errors.New("t2048: cell already occupied")
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("t2048: coordinates out of bounds")
	// ErrInvalidValue is returned for tile values that are not a positive power of two.
	ErrInvalidValue = errors.New("t2048: tile value must be a positive power of two")
	// ErrInvalidSize is returned for boards smaller than 2x2 or ragged value matrices.
	ErrInvalidSize = errors.New("t2048: invalid board size")
	// ErrUnknownSide is returned by ParseSide for unrecognised input.
	ErrUnknownSide = errors.New("t2048: unknown side")
)
