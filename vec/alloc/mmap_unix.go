//go:build linux || darwin

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator serves blocks from anonymous private mappings. Mappings are
// page-aligned, which satisfies every alignment up to MaxAlign, so blocks are
// returned exactly as mapped and Free unmaps the block it is handed.
//
// Blocks from this allocator are invisible to the garbage collector: element
// types containing Go pointers must not be stored in them.
type MmapAllocator struct{}

// Allocate maps size bytes of anonymous memory.
func (MmapAllocator) Allocate(size, align int) ([]byte, error) {
	if err := checkRequest(size, align); err != nil {
		return nil, err
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", size, err)
	}
	return b, nil
}

// Free unmaps the block. The slice must be the one Allocate returned.
func (MmapAllocator) Free(block []byte, size, align int) {
	if len(block) == 0 {
		return
	}
	_ = unix.Munmap(block)
}
