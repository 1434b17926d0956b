package alloc

import (
	"sync"
	"unsafe"
)

// DefaultPoolBlockSize is the block size used by NewPool when given a
// non-positive size.
const DefaultPoolBlockSize = 16 * 1024

// poolBaseAlign is the alignment pooled blocks carry. The runtime aligns
// allocations of minPoolBlockSize bytes or more to at least 8; requests
// needing more fall through to the heap path.
const poolBaseAlign = 8

// minPoolBlockSize keeps pooled blocks out of the runtime's tiny allocator,
// which aligns sub-16-byte allocations to as little as 2 bytes.
const minPoolBlockSize = 16

// PoolAllocator recycles fixed-size blocks through a sync.Pool. Requests that
// fit within the pool's block size are served from the pool and returned to it
// on Free; anything larger, or needing alignment beyond poolBaseAlign, falls
// through to HeapAllocator.
type PoolAllocator struct {
	blockSize int
	pool      sync.Pool
}

// NewPool creates a PoolAllocator recycling blocks of blockSize bytes.
// A non-positive blockSize selects DefaultPoolBlockSize; sizes below 16 are
// raised to 16 so every pooled block satisfies poolBaseAlign.
func NewPool(blockSize int) *PoolAllocator {
	if blockSize <= 0 {
		blockSize = DefaultPoolBlockSize
	}
	if blockSize < minPoolBlockSize {
		blockSize = minPoolBlockSize
	}
	p := &PoolAllocator{blockSize: blockSize}
	p.pool.New = func() any {
		b := make([]byte, blockSize)
		return &b[0]
	}
	return p
}

// BlockSize returns the fixed size of pooled blocks.
func (p *PoolAllocator) BlockSize() int { return p.blockSize }

// Allocate serves the request from the pool when it fits, reshaping the pooled
// block to the requested length. The block keeps its full pooled capacity so
// Free can recognize it.
func (p *PoolAllocator) Allocate(size, align int) ([]byte, error) {
	if err := checkRequest(size, align); err != nil {
		return nil, err
	}
	if size > p.blockSize || align > poolBaseAlign {
		return HeapAllocator{}.Allocate(size, align)
	}
	ptr := p.pool.Get().(*byte)
	return unsafe.Slice(ptr, p.blockSize)[:size], nil
}

// Free returns pooled blocks to the pool for reuse. Heap-path blocks are left
// to the garbage collector.
func (p *PoolAllocator) Free(block []byte, size, align int) {
	if size > p.blockSize || align > poolBaseAlign || cap(block) != p.blockSize || len(block) == 0 {
		return
	}
	p.pool.Put(&block[0])
}
