package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a FIFO ring buffer whose capacity is always a power of
// two, so positions wrap with a mask instead of a modulo. It is not safe
// for concurrent use.
type ArrayQueue[T any] struct {
	buf  []T // len(buf) is the capacity
	head int // index of the first element
	size int
	mask int // len(buf) - 1
}

// NewArrayQueue creates a queue able to hold initialCapacity elements
// before growing. Non-positive values select a small default.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := roundUp(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// roundUp returns the smallest power of two >= n.
func roundUp(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow reallocates the buffer so that extra more elements fit, unwrapping
// the live region to the start of the new buffer.
func (aq *ArrayQueue[T]) grow(extra int) {
	capacity := roundUp(aq.size + extra)
	newBuf := make([]T, capacity)
	if aq.head+aq.size <= len(aq.buf) {
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		n := copy(newBuf, aq.buf[aq.head:])
		copy(newBuf[n:], aq.buf[:(aq.head+aq.size)&aq.mask])
	}
	aq.buf = newBuf
	aq.head = 0
	aq.mask = capacity - 1
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if aq.size+n > len(aq.buf) {
		aq.grow(n)
	}
	tail := (aq.head + aq.size) & aq.mask
	if k := copy(aq.buf[tail:], values); k < n {
		copy(aq.buf, values[k:])
	}
	aq.size += n
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	var zero T
	value = aq.buf[aq.head]
	aq.buf[aq.head] = zero // drop the reference for the GC
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

// Values yields the queued elements from front to back without removing
// them. The queue must not be modified during the loop.
func (aq *ArrayQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range aq.size {
			if !yield(aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}

// Drain yields the elements while removing them, front first. Elements
// enqueued during the loop are yielded as well.
func (aq *ArrayQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := aq.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
