package alloc

import "unsafe"

// HeapAllocator delegates to the Go runtime. Blocks are ordinary byte slices
// over-allocated by align bytes and shifted so the base lands on the requested
// boundary. Free is a no-op; the garbage collector reclaims blocks once the
// container drops its reference.
type HeapAllocator struct{}

// Allocate returns a GC-managed block of exactly size bytes at the requested
// alignment.
func (HeapAllocator) Allocate(size, align int) ([]byte, error) {
	if err := checkRequest(size, align); err != nil {
		return nil, err
	}
	// Padding guarantees an aligned base exists inside the slice.
	b := make([]byte, size+align)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	shift := int((uintptr(align) - addr%uintptr(align)) % uintptr(align))
	return b[shift : shift+size : shift+size], nil
}

// Free is a no-op under garbage collection.
func (HeapAllocator) Free([]byte, int, int) {}
