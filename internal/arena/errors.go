package arena

import "errors"

var (
	// ErrInvalidConfig is returned when a room or participant is constructed
	// from values it cannot hold.
	ErrInvalidConfig = errors.New("invalid arena config")

	// ErrTileOutOfBounds is returned for tile coordinates outside the room.
	ErrTileOutOfBounds = errors.New("tile out of bounds")
)
