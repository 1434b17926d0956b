//go:build linux || darwin

package alloc

import (
	"errors"
	"testing"
	"unsafe"
)

func Test_Mmap_AllocateWriteFree(t *testing.T) {
	a := MmapAllocator{}

	block, err := a.Allocate(8192, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(block) != 8192 {
		t.Fatalf("block len %d want 8192", len(block))
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	if addr%64 != 0 {
		t.Fatalf("base %#x not 64-aligned", addr)
	}
	for i := 0; i < len(block); i += 512 {
		block[i] = 0xAB
	}
	for i := 0; i < len(block); i += 512 {
		if block[i] != 0xAB {
			t.Fatalf("byte %d: got %d", i, block[i])
		}
	}
	a.Free(block, 8192, 64)
}

func Test_Mmap_SmallAllocation(t *testing.T) {
	a := MmapAllocator{}
	block, err := a.Allocate(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	block[0] = 7
	a.Free(block, 1, 1)
}

func Test_Mmap_RejectsBadRequests(t *testing.T) {
	a := MmapAllocator{}
	if _, err := a.Allocate(0, 8); !errors.Is(err, ErrBadSize) {
		t.Fatalf("size 0: err=%v want ErrBadSize", err)
	}
	if _, err := a.Allocate(64, 3); !errors.Is(err, ErrBadAlign) {
		t.Fatalf("align 3: err=%v want ErrBadAlign", err)
	}
}

// Test_Mmap_RelocationCycle covers the raw block lifecycle a growth step
// performs on mapped storage: allocate, relocate, free. The container
// round-trip over this allocator lives in vec's test suite.
func Test_Mmap_RelocationCycle(t *testing.T) {
	a := MmapAllocator{}

	old, err := a.Allocate(64, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range old {
		old[i] = byte(i)
	}
	grown, err := a.Allocate(128, 8)
	if err != nil {
		t.Fatal(err)
	}
	copy(grown, old)
	a.Free(old, 64, 8)
	for i := 0; i < 64; i++ {
		if grown[i] != byte(i) {
			t.Fatalf("byte %d lost in relocation: got %d", i, grown[i])
		}
	}
	a.Free(grown, 128, 8)
}
