package ringbuffer

import (
	"fmt"

	"github.com/dgodfrey206/RingBuffer/errors"
)

// DropCallback is invoked with each item rejected by a saturated Put and
// each live item discarded by Clear.
type DropCallback[T any] func(item T)

// RingBuffer is a fixed-capacity circular buffer. It owns a backing array of
// capacity+1 slots; the extra slot is a sentinel that lets full and empty be
// distinguished using only the two cursors, with no separate flag.
//
// Invariants: length == (write - read) mod (capacity+1), the buffer is full
// iff read == (write+1) mod (capacity+1), and empty iff read == write.
//
// A RingBuffer is a sequential container: it is not safe for concurrent
// mutation without external synchronization. Pointers returned by Front,
// Back, At and Item, and iterators from Begin/End, are views into the
// backing array and are invalidated by the next mutating call.
//
// The zero value is a usable zero-capacity buffer (always full, every Put
// dropped) without statistics; use New for a working buffer.
type RingBuffer[T any] struct {
	storage  []T // capacity+1 slots
	read     int // next read position
	write    int // next write position
	length   int // maintained count, never derived from cursor subtraction
	capacity int

	stats   *Statistics    // initialized by New, always collected
	metrics *bufferMetrics // optional Prometheus metrics
	opts    *options[T]
}

// New creates a ring buffer holding up to capacity elements. Capacity 0 is
// legal and yields a buffer that is permanently full, so every Put is a
// no-op. Returns an error for negative capacity or when metrics
// registration fails.
func New[T any](capacity int, options ...Option[T]) (*RingBuffer[T], error) {
	if capacity < 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "RingBuffer", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	opts := applyOptions(options...)

	// Stats are always collected; Prometheus export is opt-in
	stats := NewStatistics()

	var metrics *bufferMetrics
	if opts.metricsReg != nil && opts.name != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.name)
		if err != nil {
			return nil, errors.WrapTransient(err, "RingBuffer", "New", "metrics registration")
		}
	}

	b := &RingBuffer[T]{
		storage:  make([]T, capacity+1),
		capacity: capacity,
		stats:    stats,
		metrics:  metrics,
		opts:     opts,
	}

	if opts.fill != nil {
		for i := 0; i < capacity; i++ {
			b.Put(*opts.fill)
		}
	}

	return b, nil
}

// cycle is the physical slot count, the modulus for all cursor arithmetic.
func (b *RingBuffer[T]) cycle() int {
	return len(b.storage)
}

// Put inserts a value at the write cursor. When the buffer is full the call
// is a silent no-op: the value is dropped, recorded in statistics and
// handed to the drop callback if one is set. Put is safe to call
// unconditionally; producers never need to check IsFull first.
func (b *RingBuffer[T]) Put(value T) {
	if b.IsFull() {
		if b.stats != nil {
			b.stats.Drop()
		}
		if b.metrics != nil {
			b.metrics.recordDrop()
		}
		if b.opts != nil && b.opts.logger != nil {
			b.opts.logger.Debug("ring buffer full, dropping item",
				"buffer", b.opts.name, "capacity", b.capacity)
		}
		if b.opts != nil && b.opts.dropCallback != nil {
			b.opts.dropCallback(value)
		}
		return
	}

	b.storage[b.write] = value
	b.write = (b.write + 1) % b.cycle()
	b.length++

	if b.stats != nil {
		b.stats.Put()
		b.stats.UpdateSize(int64(b.length))
	}
	if b.metrics != nil {
		b.metrics.recordPut(b.length, b.capacity)
	}
}

// Get returns the oldest element and advances the read cursor. Returns
// errors.ErrEmptyBuffer when the buffer is empty, leaving state unchanged.
func (b *RingBuffer[T]) Get() (T, error) {
	var zero T
	if b.length == 0 {
		return zero, errors.WrapInvalid(errors.ErrEmptyBuffer, "RingBuffer", "Get", "consuming read")
	}

	value := b.storage[b.read]
	b.storage[b.read] = zero // clear for GC
	b.read = (b.read + 1) % b.cycle()
	b.length--

	if b.stats != nil {
		b.stats.Get()
		b.stats.UpdateSize(int64(b.length))
	}
	if b.metrics != nil {
		b.metrics.recordGet(b.length, b.capacity)
	}

	return value, nil
}

// Pop advances the read cursor without returning the element. Returns
// errors.ErrEmptyBuffer when the buffer is empty. Pop after reading
// Front is equivalent to one Get.
func (b *RingBuffer[T]) Pop() error {
	if b.length == 0 {
		return errors.WrapInvalid(errors.ErrEmptyBuffer, "RingBuffer", "Pop", "discarding read")
	}

	var zero T
	b.storage[b.read] = zero // clear for GC
	b.read = (b.read + 1) % b.cycle()
	b.length--

	if b.stats != nil {
		b.stats.Get()
		b.stats.UpdateSize(int64(b.length))
	}
	if b.metrics != nil {
		b.metrics.recordGet(b.length, b.capacity)
	}

	return nil
}

// Front returns a pointer to the oldest element without consuming it.
// Returns errors.ErrEmptyBuffer when the buffer is empty. The pointer is
// invalidated by the next mutating call.
func (b *RingBuffer[T]) Front() (*T, error) {
	if b.length == 0 {
		return nil, errors.WrapInvalid(errors.ErrEmptyBuffer, "RingBuffer", "Front", "peek")
	}

	if b.stats != nil {
		b.stats.Peek()
	}
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return &b.storage[b.read], nil
}

// Back returns a pointer to the most recently written element. With a
// single element it coincides with Front. Returns errors.ErrEmptyBuffer
// when the buffer is empty.
func (b *RingBuffer[T]) Back() (*T, error) {
	if b.length == 0 {
		return nil, errors.WrapInvalid(errors.ErrEmptyBuffer, "RingBuffer", "Back", "peek")
	}

	if b.stats != nil {
		b.stats.Peek()
	}
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	last := (b.write - 1 + b.cycle()) % b.cycle()
	return &b.storage[last], nil
}

// At returns a pointer to the element idx positions after the read cursor,
// wrapping modulo capacity+1. Returns errors.ErrIndexOutOfRange when idx is
// outside [0, Size()); on a valid index it behaves exactly like Item.
func (b *RingBuffer[T]) At(idx int) (*T, error) {
	if idx < 0 || idx >= b.length {
		return nil, errors.WrapInvalid(errors.ErrIndexOutOfRange, "RingBuffer", "At",
			fmt.Sprintf("index %d with size %d", idx, b.length))
	}

	if b.stats != nil {
		b.stats.Peek()
	}
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return &b.storage[(b.read+idx)%b.cycle()], nil
}

// Item returns a pointer to the element idx positions after the read
// cursor with no bounds check. The caller must ensure 0 <= idx < Size();
// an out-of-range idx yields a stale or zero slot.
func (b *RingBuffer[T]) Item(idx int) *T {
	return &b.storage[(b.read+idx)%b.cycle()]
}

// ReadBatch retrieves and removes up to max elements, oldest first.
// Returns nil when max <= 0 or the buffer is empty.
func (b *RingBuffer[T]) ReadBatch(max int) []T {
	if max <= 0 || b.length == 0 {
		return nil
	}

	readCount := max
	if readCount > b.length {
		readCount = b.length
	}

	result := make([]T, readCount)
	var zero T

	for i := 0; i < readCount; i++ {
		result[i] = b.storage[b.read]
		b.storage[b.read] = zero // clear for GC
		b.read = (b.read + 1) % b.cycle()
		b.length--

		if b.stats != nil {
			b.stats.Get()
		}
	}

	if b.stats != nil {
		b.stats.UpdateSize(int64(b.length))
	}
	if b.metrics != nil {
		b.metrics.updateSize(b.length, b.capacity)
	}

	return result
}

// Clear removes all elements and resets both cursors. The drop callback,
// if set, observes every discarded element in insertion order.
func (b *RingBuffer[T]) Clear() {
	if b.opts != nil && b.opts.dropCallback != nil {
		for i := 0; i < b.length; i++ {
			b.opts.dropCallback(b.storage[(b.read+i)%b.cycle()])
		}
	}

	clear(b.storage)
	b.read = 0
	b.write = 0
	b.length = 0

	if b.stats != nil {
		b.stats.UpdateSize(0)
	}
	if b.metrics != nil {
		b.metrics.updateSize(0, b.capacity)
	}
}

// Size returns the number of live elements. O(1), read from the maintained
// counter.
func (b *RingBuffer[T]) Size() int {
	return b.length
}

// Capacity returns the declared usable capacity, not the physical slot
// count.
func (b *RingBuffer[T]) Capacity() int {
	return b.capacity
}

// IsEmpty reports whether the buffer holds no elements.
func (b *RingBuffer[T]) IsEmpty() bool {
	return b.length == 0
}

// IsFull reports whether the buffer is at capacity. Trivially true for a
// zero-capacity buffer.
func (b *RingBuffer[T]) IsFull() bool {
	if b.capacity == 0 {
		return true
	}
	return b.read == (b.write+1)%b.cycle()
}

// Stats returns the buffer statistics, nil only for the zero value.
func (b *RingBuffer[T]) Stats() *Statistics {
	return b.stats
}
