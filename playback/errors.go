package playback

import "errors"

var (
	// ErrOutOfRange is returned by Seek for a position outside [0, Len()).
	ErrOutOfRange = errors.New("playback: position out of range")

	// ErrBadInterval is returned by Play for a non-positive interval.
	ErrBadInterval = errors.New("playback: interval must be positive")

	// ErrEmptyTrace is returned by Play when there is nothing to show.
	ErrEmptyTrace = errors.New("playback: trace is empty")
)
