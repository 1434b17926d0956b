package alloc

import (
	"testing"
	"unsafe"
)

func Test_Pool_ReusesFreedBlocks(t *testing.T) {
	p := NewPool(4096)

	first, err := p.Allocate(256, 8)
	if err != nil {
		t.Fatal(err)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(first)))
	p.Free(first, 256, 8)

	second, err := p.Allocate(512, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got := uintptr(unsafe.Pointer(unsafe.SliceData(second))); got != base {
		t.Fatalf("expected freed block to be reused: first base %#x, second base %#x", base, got)
	}
	p.Free(second, 512, 8)
}

func Test_Pool_OversizeFallsThrough(t *testing.T) {
	p := NewPool(1024)

	block, err := p.Allocate(4096, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(block) != 4096 {
		t.Fatalf("oversize block len %d want 4096", len(block))
	}
	if cap(block) == p.BlockSize() {
		t.Fatal("oversize block must not masquerade as pooled")
	}
	p.Free(block, 4096, 8)
}

func Test_Pool_OverAlignedFallsThrough(t *testing.T) {
	p := NewPool(4096)

	block, err := p.Allocate(128, 64)
	if err != nil {
		t.Fatal(err)
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	if addr%64 != 0 {
		t.Fatalf("base %#x not 64-aligned", addr)
	}
	p.Free(block, 128, 64)
}

func Test_Pool_DefaultBlockSize(t *testing.T) {
	if got := NewPool(0).BlockSize(); got != DefaultPoolBlockSize {
		t.Fatalf("BlockSize()=%d want %d", got, DefaultPoolBlockSize)
	}
	if got := NewPool(-5).BlockSize(); got != DefaultPoolBlockSize {
		t.Fatalf("BlockSize()=%d want %d", got, DefaultPoolBlockSize)
	}
}

func Test_Pool_SmallBlockSizeKeepsAlignment(t *testing.T) {
	// Sub-16-byte blocks would come from the runtime's tiny allocator, which
	// aligns to as little as 2 bytes; the pool must raise the block size so
	// pooled blocks still honor poolBaseAlign.
	p := NewPool(6)
	if got := p.BlockSize(); got != minPoolBlockSize {
		t.Fatalf("BlockSize()=%d want %d", got, minPoolBlockSize)
	}
	for i := 0; i < 100; i++ {
		block, err := p.Allocate(4, 8)
		if err != nil {
			t.Fatalf("iteration %d: Allocate(4, 8) failed: %v", i, err)
		}
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
		if addr%8 != 0 {
			t.Fatalf("iteration %d: Allocate(4, 8) returned base %#x, not 8-aligned", i, addr)
		}
		p.Free(block, 4, 8)
	}
}
