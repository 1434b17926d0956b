package alloc

// MaxAlign is the largest alignment an Allocator must honor. 64 covers every
// Go type and a full cache line.
const MaxAlign = 64

// Allocator defines the interface for raw block allocation and deallocation.
//
// Implementations:
//   - HeapAllocator: GC-backed blocks, no-op Free (the default)
//   - PoolAllocator: fixed-size blocks recycled through a sync.Pool
//   - PinnedAllocator: non-GC pinned memory (imgk/memory-go)
//   - MmapAllocator: anonymous mappings (linux, darwin)
//   - CheckedAllocator: instrumented wrapper for tests
//
// This interface enables different allocation strategies while keeping
// container logic unchanged.
type Allocator interface {
	// Allocate returns a block of at least size bytes whose base address is
	// a multiple of align. size must be positive; align must be a power of
	// two in [1, MaxAlign]. The block's contents are unspecified.
	Allocate(size, align int) ([]byte, error)

	// Free releases a block previously returned by Allocate on this
	// allocator. Callers must pass the block exactly as issued, along with
	// the same size and align used to obtain it.
	Free(block []byte, size, align int)
}

// Default is the process-wide allocator used when none is supplied.
var Default Allocator = HeapAllocator{}

// checkRequest validates an allocation request before any implementation
// touches its backing store.
func checkRequest(size, align int) error {
	if size <= 0 {
		return ErrBadSize
	}
	if align < 1 || align > MaxAlign || align&(align-1) != 0 {
		return ErrBadAlign
	}
	return nil
}
