package vec

import (
	"unsafe"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/vec/alloc"
)

// Vec is a contiguous, growable sequence of T backed by a single raw block
// from an alloc.Allocator. The zero state holds no allocation; the first
// growth-triggering operation obtains one.
//
// Elements at indices [0, Len()) are initialized and owned by the Vec. Slots
// beyond Len() are allocated but uninitialized and never exposed.
type Vec[T any] struct {
	block []byte
	len   int
	cap   int
	alloc alloc.Allocator
}

// New returns an empty Vec using the process-wide default allocator.
// No allocation occurs until the first growth-triggering operation.
func New[T any]() *Vec[T] {
	return NewIn[T](alloc.Default)
}

// NewIn returns an empty Vec drawing its storage from a. A nil allocator
// selects the default.
func NewIn[T any](a alloc.Allocator) *Vec[T] {
	if a == nil {
		a = alloc.Default
	}
	return &Vec[T]{alloc: a}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the number of element slots in the backing block.
func (v *Vec[T]) Cap() int { return v.cap }

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.len == 0 }

// Append adds value as the new last element, growing the backing block first
// if every slot is occupied. On allocation failure the Vec is left exactly as
// it was, with every element intact and usable.
func (v *Vec[T]) Append(value T) error {
	need, ok := buf.AddOverflowSafe(v.len, 1)
	if !ok {
		return ErrTooLarge
	}
	if err := v.grow(need); err != nil {
		return err
	}
	v.slots()[v.len] = value
	v.len++
	return nil
}

// Extend appends values in order. Capacity for all of them is secured with a
// single growth step up front, so either every value is appended or, on
// allocation failure, none are and the Vec is unchanged.
func (v *Vec[T]) Extend(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	need, ok := buf.AddOverflowSafe(v.len, len(values))
	if !ok {
		return ErrTooLarge
	}
	if err := v.grow(need); err != nil {
		return err
	}
	copy(v.slots()[v.len:need], values)
	v.len = need
	return nil
}

// Pop removes and returns the last element. On an empty Vec it returns the
// zero value and false without mutating anything. The vacated slot's bytes
// are left as-is; capacity never shrinks on Pop.
func (v *Vec[T]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	v.len--
	return v.slots()[v.len], true
}

// Get returns the element at index i, or ErrOutOfBounds when i is outside
// [0, Len()).
func (v *Vec[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.len {
		var zero T
		return zero, ErrOutOfBounds
	}
	return v.slots()[i], nil
}

// Set overwrites the element at index i, or returns ErrOutOfBounds when i is
// outside [0, Len()).
func (v *Vec[T]) Set(i int, value T) error {
	if i < 0 || i >= v.len {
		return ErrOutOfBounds
	}
	v.slots()[i] = value
	return nil
}

// Ptr returns a pointer to the element at index i for in-place mutation, or
// ErrOutOfBounds when i is outside [0, Len()). The pointer is invalidated by
// the next growth step or Free.
func (v *Vec[T]) Ptr(i int) (*T, error) {
	if i < 0 || i >= v.len {
		return nil, ErrOutOfBounds
	}
	return &v.slots()[i], nil
}

// View returns the initialized region [0, Len()) as a slice over the backing
// block, without copying. Writes through the slice are writes to the
// elements. The slice never covers unoccupied slots and is invalidated by the
// next growth step or Free.
func (v *Vec[T]) View() []T {
	return v.slots()[:v.len]
}

// Reserve reallocates the backing block to exactly n slots, regardless of the
// current capacity. Targets below the current length are rejected with
// ErrShrinkBelowLen. Reserve(0) on an empty Vec releases the block entirely.
func (v *Vec[T]) Reserve(n int) error {
	if n < v.len {
		return ErrShrinkBelowLen
	}
	return v.realloc(n)
}

// Clear discards all elements without releasing the backing block.
func (v *Vec[T]) Clear() { v.len = 0 }

// Free returns the backing block to the allocator and resets the Vec to its
// empty state. Idempotent; the Vec remains usable afterwards.
func (v *Vec[T]) Free() {
	v.release()
	v.len = 0
}

// release hands the block back exactly once. A zero capacity means no
// allocation exists and nothing is passed to the allocator.
func (v *Vec[T]) release() {
	if v.cap > 0 && sizeOf[T]() > 0 {
		v.alloc.Free(v.block, v.cap*sizeOf[T](), alignOf[T]())
	}
	v.block = nil
	v.cap = 0
}

// slots exposes the full capacity of the backing block as typed storage.
// Callers index only [0, len) for reads; growth writes the slot at len.
func (v *Vec[T]) slots() []T {
	if v.cap == 0 {
		return nil
	}
	if sizeOf[T]() == 0 {
		// Zero-size elements carry no storage; a made slice of the right
		// length gives indexable slots without touching the allocator.
		return make([]T, v.cap)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(v.block))), v.cap)
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func alignOf[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}
