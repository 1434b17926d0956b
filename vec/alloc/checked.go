package alloc

import (
	"fmt"
	"unsafe"
)

type blockInfo struct {
	size  int
	align int
}

// CheckedAllocator wraps another Allocator and records every block it issues.
// Free calls are verified against the record: the size and alignment must
// match what was passed at allocation time, and the block must be one this
// allocator issued and has not yet released. Violations are collected rather
// than panicking so tests can assert on them.
//
// Not safe for concurrent use.
type CheckedAllocator struct {
	inner      Allocator
	blocks     map[uintptr]blockInfo
	allocs     int
	frees      int
	bytes      int
	violations []error
}

// NewChecked wraps inner with allocation tracking.
func NewChecked(inner Allocator) *CheckedAllocator {
	return &CheckedAllocator{
		inner:  inner,
		blocks: make(map[uintptr]blockInfo),
	}
}

// Allocate delegates to the wrapped allocator and records the issued block.
func (c *CheckedAllocator) Allocate(size, align int) ([]byte, error) {
	block, err := c.inner.Allocate(size, align)
	if err != nil {
		return nil, err
	}
	c.allocs++
	c.bytes += size
	c.blocks[uintptr(unsafe.Pointer(unsafe.SliceData(block)))] = blockInfo{size: size, align: align}
	return block, nil
}

// Free verifies the call against the allocation record, then delegates.
// Unknown blocks are recorded as violations and not forwarded; a size or
// alignment mismatch is recorded and forwarded with the recorded values so
// the wrapped allocator still sees a well-formed release.
func (c *CheckedAllocator) Free(block []byte, size, align int) {
	if len(block) == 0 {
		c.violations = append(c.violations, fmt.Errorf("%w: empty block", ErrUnknownBlock))
		return
	}
	key := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	info, ok := c.blocks[key]
	if !ok {
		c.violations = append(c.violations, fmt.Errorf("%w: base %#x", ErrUnknownBlock, key))
		return
	}
	if info.size != size || info.align != align {
		c.violations = append(c.violations,
			fmt.Errorf("%w: got size=%d align=%d, recorded size=%d align=%d",
				ErrSizeMismatch, size, align, info.size, info.align))
	}
	delete(c.blocks, key)
	c.frees++
	c.bytes -= info.size
	c.inner.Free(block, info.size, info.align)
}

// Outstanding reports how many issued blocks have not been freed.
func (c *CheckedAllocator) Outstanding() int { return len(c.blocks) }

// AllocatedBytes reports the byte total of outstanding blocks.
func (c *CheckedAllocator) AllocatedBytes() int { return c.bytes }

// Allocs reports the number of successful allocations.
func (c *CheckedAllocator) Allocs() int { return c.allocs }

// Frees reports the number of verified releases.
func (c *CheckedAllocator) Frees() int { return c.frees }

// Violations returns every contract violation observed so far.
func (c *CheckedAllocator) Violations() []error { return c.violations }
