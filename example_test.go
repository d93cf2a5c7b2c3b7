package ringbuffer_test

import (
	"errors"
	"fmt"

	ringbuffer "github.com/dgodfrey206/RingBuffer"
	ringerrors "github.com/dgodfrey206/RingBuffer/errors"
)

func Example() {
	buf, _ := ringbuffer.New[int](3)

	buf.Put(1)
	buf.Put(2)
	buf.Put(3)
	buf.Put(4) // buffer is full, silently dropped

	for !buf.IsEmpty() {
		v, _ := buf.Get()
		fmt.Println(v)
	}

	_, err := buf.Get()
	fmt.Println(errors.Is(err, ringerrors.ErrEmptyBuffer))
	// Output:
	// 1
	// 2
	// 3
	// true
}

func ExampleRingBuffer_Iter() {
	buf, _ := ringbuffer.New[string](3)

	buf.Put("oldest")
	buf.Put("middle")
	buf.Put("newest")

	for v := range buf.Iter() {
		fmt.Println(v)
	}
	// Output:
	// oldest
	// middle
	// newest
}

func ExampleWithDropCallback() {
	buf, _ := ringbuffer.New[int](2,
		ringbuffer.WithDropCallback[int](func(item int) {
			fmt.Println("dropped", item)
		}),
	)

	buf.Put(1)
	buf.Put(2)
	buf.Put(3)
	// Output:
	// dropped 3
}

func ExampleRingBuffer_Begin() {
	buf, _ := ringbuffer.New[int](4)
	buf.Put(10)
	buf.Put(20)
	buf.Put(30)

	end := buf.End()
	for it := buf.Begin(); !it.Equal(end); it.Next() {
		fmt.Println(*it.Value())
	}
	// Output:
	// 10
	// 20
	// 30
}
