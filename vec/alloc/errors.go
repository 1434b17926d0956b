package alloc

import "errors"

var (
	// ErrBadSize indicates an allocation request for zero or negative bytes.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrBadAlign indicates an alignment that is not a power of two in [1, MaxAlign].
	ErrBadAlign = errors.New("alloc: align must be a power of two between 1 and 64")

	// ErrExhausted indicates the backing store refused the allocation.
	ErrExhausted = errors.New("alloc: backing store exhausted")

	// ErrUnknownBlock indicates a Free for a block this allocator never issued,
	// or issued and already released.
	ErrUnknownBlock = errors.New("alloc: free of unknown block")

	// ErrSizeMismatch indicates a Free whose size or alignment does not match
	// what was recorded at allocation time.
	ErrSizeMismatch = errors.New("alloc: free size/align mismatch")
)
