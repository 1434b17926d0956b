// Package vec implements a contiguous, growable sequence container whose
// backing storage comes from a pluggable allocator.
//
// # Overview
//
// Vec[T] owns a single raw block of memory sized for its capacity and exposes
// the initialized prefix [0, Len()) as typed elements. Appending past the
// current capacity triggers a growth step: a fresh, larger block is obtained
// from the allocator, live elements are relocated into it byte for byte, and
// the old block is released. Capacity doubles on growth with a floor of 16
// slots, giving amortized O(1) Append.
//
// # Allocators
//
// Vec is parameterized over the alloc.Allocator capability. New uses the
// process-wide default (GC-backed); NewIn accepts any implementation:
//
//	v := vec.NewIn[uint64](alloc.NewPool(0))
//	defer v.Free()
//	if err := v.Append(42); err != nil {
//	    return err
//	}
//
// Blocks from non-GC allocators (PinnedAllocator, MmapAllocator) are not
// scanned by the garbage collector; element types containing Go pointers must
// only be used with GC-backed allocators.
//
// # Ownership and lifetime
//
// A Vec is single-owner and not safe for concurrent use. Free returns the
// backing block to the allocator exactly once and resets the Vec to its empty
// state; it is safe to call more than once and safe to keep using the Vec
// afterwards. Pointers and views obtained from a Vec are invalidated by the
// next growth step (Append or Extend past capacity, Reserve) and by Free.
package vec
