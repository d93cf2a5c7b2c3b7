package ringbuffer

import (
	"testing"

	"github.com/dgodfrey206/RingBuffer/metric"
)

// BenchmarkPut benchmarks insertions across capacities, with and without
// Prometheus export. Buffers saturate quickly, so most iterations measure
// the drop path as well as the insert path.
func BenchmarkPut(b *testing.B) {
	registry := metric.NewRegistry()

	buf100, err := New[int](100)
	if err != nil {
		b.Fatal(err)
	}
	buf1000, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	bufMetrics, err := New[int](1000, WithMetrics[int](registry, "bench_put"))
	if err != nil {
		b.Fatal(err)
	}

	benchmarks := []struct {
		name   string
		buffer *RingBuffer[int]
	}{
		{"Cap100", buf100},
		{"Cap1000", buf1000},
		{"Cap1000_Metrics", bufMetrics},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			buffer := bm.buffer
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buffer.Put(i)
			}
		})
	}
}

// BenchmarkPutGet measures a steady-state producer/consumer pair where the
// buffer never saturates.
func BenchmarkPutGet(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Put(i)
		if _, err := buf.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFront(b *testing.B) {
	buf, err := New[int](100, WithFill[int](42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buf.Front(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIter(b *testing.B) {
	buf, err := New[int](1000, WithFill[int](1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		for v := range buf.Iter() {
			sum += v
		}
	}
	_ = sum
}
