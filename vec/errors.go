package vec

import "errors"

var (
	// ErrOutOfBounds indicates element access at an index outside [0, Len()).
	ErrOutOfBounds = errors.New("vec: index out of bounds")

	// ErrShrinkBelowLen indicates a Reserve target smaller than the current
	// length, which would strand live elements.
	ErrShrinkBelowLen = errors.New("vec: reserve below current length")

	// ErrTooLarge indicates a capacity whose byte size overflows int.
	ErrTooLarge = errors.New("vec: capacity overflows block size")
)
