package alloc

import (
	"fmt"
	"unsafe"

	memory "github.com/imgk/memory-go"
)

// PinnedAllocator hands out blocks of pinned, non-GC memory obtained through
// imgk/memory-go. A handle table keyed by block base address maps each issued
// block back to its underlying allocation so Free can release it.
//
// Blocks from this allocator are invisible to the garbage collector: element
// types containing Go pointers must not be stored in them.
//
// Not safe for concurrent use.
type PinnedAllocator struct {
	handles map[uintptr]func()
}

// NewPinned creates an empty PinnedAllocator.
func NewPinned() *PinnedAllocator {
	return &PinnedAllocator{handles: make(map[uintptr]func())}
}

// Allocate obtains a pinned block of at least size bytes at the requested
// alignment.
func (p *PinnedAllocator) Allocate(size, align int) ([]byte, error) {
	if err := checkRequest(size, align); err != nil {
		return nil, err
	}
	ptr, raw, err := memory.Alloc[byte](size + align)
	if err != nil {
		return nil, fmt.Errorf("alloc: pinned allocate %d bytes: %w", size, err)
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	shift := int((uintptr(align) - addr%uintptr(align)) % uintptr(align))
	block := raw[shift : shift+size : shift+size]
	p.handles[uintptr(unsafe.Pointer(unsafe.SliceData(block)))] = func() { memory.Free(ptr) }
	return block, nil
}

// Free releases the pinned allocation backing block. Blocks this allocator
// never issued are ignored.
func (p *PinnedAllocator) Free(block []byte, size, align int) {
	if len(block) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	release, ok := p.handles[key]
	if !ok {
		return
	}
	delete(p.handles, key)
	release()
}

// Outstanding reports how many issued blocks have not been freed.
func (p *PinnedAllocator) Outstanding() int { return len(p.handles) }
