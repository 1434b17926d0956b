package vec

import "iter"

// All returns an iterator over index/element pairs in index order. The
// sequence is restartable: each range over it begins a fresh pass. Structural
// mutation of the Vec during a pass invalidates that pass.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.View() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Range calls fn for each element in index order with a pointer for in-place
// mutation, stopping early when fn returns false. The pointers are only valid
// for the duration of the call; structural mutation of the Vec from within fn
// invalidates the walk.
func (v *Vec[T]) Range(fn func(i int, p *T) bool) {
	s := v.slots()
	for i := 0; i < v.len; i++ {
		if !fn(i, &s[i]) {
			return
		}
	}
}
