package generation

import "errors"

var (
	// ErrRoomTargetNotReached is returned when random placement ran out of
	// attempts before placing the requested number of rooms
	ErrRoomTargetNotReached = errors.New("room target not reached")

	// ErrInvalidRoomSize is returned for an empty or malformed room size range
	ErrInvalidRoomSize = errors.New("invalid room size range")
)
