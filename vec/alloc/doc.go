// Package alloc provides the memory-source abstraction used by the vec container.
//
// # Overview
//
// Containers in this module never call make or new for their backing storage
// directly. Instead they hold an Allocator and route every acquisition and
// release of raw memory through it, so the memory source can be swapped
// without touching container logic.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(size, align): hand back a block of at least size bytes whose
//     base address is a multiple of align
//   - Free(block, size, align): release a previously issued block, described
//     by the same size and alignment used to obtain it
//
// Blocks come back uninitialized: their contents are unspecified and callers
// must not read them before writing.
//
// # Implementations
//
// HeapAllocator: the default. Blocks are ordinary garbage-collected byte
// slices, over-allocated and shifted to the requested alignment. Free is a
// no-op; the collector reclaims unreferenced blocks.
//
// PoolAllocator: serves requests up to a fixed block size from a sync.Pool,
// returning freed blocks to the pool for reuse. Oversize or over-aligned
// requests fall through to the heap path.
//
// PinnedAllocator: non-GC pinned memory obtained through imgk/memory-go.
// Blocks are invisible to the garbage collector and must not hold Go
// pointers.
//
// MmapAllocator (linux, darwin): page-granular anonymous mappings via
// golang.org/x/sys/unix. Same no-Go-pointers restriction as PinnedAllocator.
//
// CheckedAllocator: wraps any Allocator and records every outstanding block.
// It verifies that Free receives the size and alignment recorded at
// Allocate, and flags double-frees, foreign blocks, and leaks. Intended for
// tests.
//
// # Usage Example
//
//	a := alloc.NewChecked(alloc.HeapAllocator{})
//	block, err := a.Allocate(256, 8)
//	if err != nil {
//	    return err
//	}
//	// ... use block ...
//	a.Free(block, 256, 8)
//	if a.Outstanding() != 0 {
//	    // leak
//	}
//
// Allocators other than HeapAllocator and PoolAllocator are not safe for
// concurrent use; the containers in this module are single-owner,
// single-threaded by contract, and their allocators inherit that contract.
package alloc
