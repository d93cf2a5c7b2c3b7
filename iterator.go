package ringbuffer

import "iter"

// WrapIterator is a cursor into a buffer's backing storage that steps with
// wraparound over a fixed modulus. It borrows the storage rather than
// owning it: the buffer must outlive any iterator in use, and any Put, Get,
// Pop or Clear invalidates previously obtained iterators.
//
// Equality compares positions only. Iterators from different buffers must
// never be compared; that is a caller contract, not a runtime check.
type WrapIterator[T any] struct {
	storage  []T
	position int // always in [0, cycle)
	cycle    int
}

// Begin returns an iterator positioned at the read cursor, the oldest
// element when the buffer is non-empty.
func (b *RingBuffer[T]) Begin() WrapIterator[T] {
	return WrapIterator[T]{storage: b.storage, position: b.read, cycle: b.cycle()}
}

// End returns an iterator positioned at the write cursor, one past the
// newest element. The half-open range Begin..End, stepped with Next, visits
// exactly Size() elements oldest first.
func (b *RingBuffer[T]) End() WrapIterator[T] {
	return WrapIterator[T]{storage: b.storage, position: b.write, cycle: b.cycle()}
}

// Next advances the iterator one position, wrapping at the end of storage.
func (it *WrapIterator[T]) Next() {
	it.Advance(1)
}

// Prev retreats the iterator one position, wrapping at the start of
// storage.
func (it *WrapIterator[T]) Prev() {
	it.Advance(-1)
}

// Advance moves the iterator by an arbitrary signed offset. A single
// normalized modular computation handles offsets larger than one cycle in
// either direction.
func (it *WrapIterator[T]) Advance(offset int) {
	if it.cycle == 0 {
		return
	}
	p := (it.position + offset) % it.cycle
	if p < 0 {
		p += it.cycle
	}
	it.position = p
}

// Retreat moves the iterator backward by an arbitrary signed offset.
func (it *WrapIterator[T]) Retreat(offset int) {
	it.Advance(-offset)
}

// Value returns a pointer to the element at the current position.
func (it *WrapIterator[T]) Value() *T {
	return &it.storage[it.position]
}

// Position returns the current index into the backing storage.
func (it *WrapIterator[T]) Position() int {
	return it.position
}

// Equal reports whether two iterators are at the same position.
func (it WrapIterator[T]) Equal(other WrapIterator[T]) bool {
	return it.position == other.position
}

// Iter returns a sequence over the live elements, oldest first. The
// sequence is a snapshot of the cursor positions at call time; mutating the
// buffer during iteration is undefined.
func (b *RingBuffer[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := b.End()
		for it := b.Begin(); !it.Equal(end); it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}
