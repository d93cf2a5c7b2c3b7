// Package ringbuffer provides a generic fixed-capacity circular buffer
// with built-in statistics tracking and optional Prometheus metrics
// integration.
//
// # Overview
//
// RingBuffer stores up to a declared capacity of elements in a
// preallocated backing array, supporting insertion at a write cursor,
// removal from a read cursor, indexed access relative to the read cursor,
// and wraparound iteration from the oldest to the newest element.
//
// The backing array holds capacity+1 physical slots. The extra slot is a
// sentinel: read == write always means empty and read == write+1 (mod
// capacity+1) always means full, so the two states are distinguished with
// only the two cursors and no separate flag.
//
// # Quick Start
//
//	buf, err := ringbuffer.New[int](1024)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	buf.Put(42)          // silent no-op once full
//	value, err := buf.Get() // errors.ErrEmptyBuffer once empty
//
// Pre-fill the buffer so it starts out saturated:
//
//	buf, _ := ringbuffer.New[int](8, ringbuffer.WithFill[int](0))
//
// # Saturation Semantics
//
// Put on a full buffer is defined behavior, not an error: the value is
// dropped, the drop is counted in statistics, and the optional drop
// callback observes it. This asymmetry (checked Get, unchecked Put) lets
// producers call Put unconditionally while consumers handle the
// empty-buffer condition explicitly.
//
//	buf, _ := ringbuffer.New[*Event](100,
//		ringbuffer.WithDropCallback[*Event](func(e *Event) {
//			log.Printf("dropped event %s", e.ID)
//		}),
//	)
//
// # Iteration
//
// Begin and End yield WrapIterator values at the read and write cursors;
// the half-open range visits exactly Size() elements, oldest first. Iter
// wraps the same traversal as an iter.Seq for range statements:
//
//	for v := range buf.Iter() {
//		process(v)
//	}
//
// Iterators and the pointers returned by Front, Back, At and Item are
// borrowed views into the backing array: they are invalidated by the next
// Put, Get, Pop or Clear. The buffer must outlive any iterator in use.
// Iterator equality compares positions only, so iterators from different
// buffers must never be compared.
//
// # Observability
//
// Statistics are always collected and available via Stats(): operation
// counters, current and max size, and derived rates such as throughput and
// drop rate. Prometheus export is opt-in:
//
//	registry := metric.NewRegistry()
//	buf, err := ringbuffer.New[[]byte](5000,
//		ringbuffer.WithMetrics[[]byte](registry, "udp_input"),
//	)
//
// Counters and gauges are const-labeled with the buffer name under the
// "ringbuffer" namespace. Statistics use atomic counters so a monitoring
// goroutine may read them while the owner mutates the buffer.
//
// # Concurrency
//
// The container itself is sequential: operations are synchronous and O(1)
// (construction is O(capacity) when pre-filling), and concurrent mutation
// requires external synchronization. The intended use is a single
// producer/consumer pair coordinating externally.
//
// # Errors
//
// Get and Pop on an empty buffer fail with errors.ErrEmptyBuffer; At with
// an index outside [0, Size()) fails with errors.ErrIndexOutOfRange. Both
// are recoverable, classified conditions; see the errors subpackage.
//
// # Examples
//
// See example_test.go for runnable examples that appear in godoc.
package ringbuffer
