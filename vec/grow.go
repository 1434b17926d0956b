package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/buf"
)

// minCapacity is the slot count of the first allocation. Starting here avoids
// a run of tiny reallocations while a small Vec warms up.
const minCapacity = 16

// grow ensures capacity for at least need slots. The new capacity is
// max(cap*2, minCapacity), doubled further if a bulk append needs more.
func (v *Vec[T]) grow(need int) error {
	if need <= v.cap {
		return nil
	}
	newCap := minCapacity
	if c, ok := buf.MulOverflowSafe(v.cap, 2); ok && c > newCap {
		newCap = c
	} else if !ok {
		return ErrTooLarge
	}
	for newCap < need {
		c, ok := buf.MulOverflowSafe(newCap, 2)
		if !ok {
			return ErrTooLarge
		}
		newCap = c
	}
	return v.realloc(newCap)
}

// realloc is the single growth routine: every allocate, relocate, and free of
// the backing block happens here.
//
// The fresh block is obtained before the old one is touched, so a failed
// allocation leaves the Vec fully intact. Live elements are relocated with a
// byte copy; no per-element construction or teardown runs during the
// transfer. The old block is released described by the same size and
// alignment used to obtain it.
func (v *Vec[T]) realloc(newCap int) error {
	if newCap == 0 {
		v.release()
		return nil
	}
	if sizeOf[T]() == 0 {
		// No storage to move for zero-size elements; only the bookkeeping
		// changes.
		v.cap = newCap
		return nil
	}
	size, ok := buf.MulOverflowSafe(newCap, sizeOf[T]())
	if !ok {
		return ErrTooLarge
	}
	block, err := v.alloc.Allocate(size, alignOf[T]())
	if err != nil {
		return fmt.Errorf("vec: grow to %d slots: %w", newCap, err)
	}
	if v.cap > 0 {
		copy(block, v.block[:v.len*sizeOf[T]()])
		v.alloc.Free(v.block, v.cap*sizeOf[T](), alignOf[T]())
	}
	v.block = block
	v.cap = newCap
	return nil
}
