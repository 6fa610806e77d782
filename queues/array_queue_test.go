package queues_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"reseq/queues"
)

func TestNewArrayQueue(t *testing.T) {
	tests := []struct {
		name            string
		initialCapacity int
	}{
		{"Negative capacity", -1},
		{"Zero capacity", 0},
		{"Capacity 1", 1},
		{"Capacity 3 (round up)", 3},
		{"Capacity 9 (round up)", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)
			q := queues.NewArrayQueue[int](tt.initialCapacity)
			r.Zero(q.Size())
			r.True(q.IsEmpty())

			// Every capacity must accept more elements than it started with.
			for i := range 20 {
				q.Enqueue(i)
			}
			r.Equal(20, q.Size())
		})
	}
}

func TestArrayQueueWrapAround(t *testing.T) {
	r := require.New(t)
	q := queues.NewArrayQueue[int](4)

	// [1, 2, 3, 4]
	q.EnqueueAll(1, 2, 3, 4)
	for _, want := range []int{1, 2} {
		v, ok := q.Dequeue()
		r.True(ok)
		r.Equal(want, v)
	}
	// [5, 6, 3, 4] head=2, wrapped
	q.Enqueue(5)
	q.Enqueue(6)

	v, ok := q.Peek()
	r.True(ok)
	r.Equal(3, v)

	// Growing from a wrapped state must unwrap in order.
	q.Enqueue(7)
	r.Equal([]int{3, 4, 5, 6, 7}, slices.Collect(q.Values()))
	r.Equal([]int{3, 4, 5, 6, 7}, slices.Collect(q.Drain()))
	r.True(q.IsEmpty())
}

func TestArrayQueueEnqueueAllWraps(t *testing.T) {
	r := require.New(t)
	q := queues.NewArrayQueue[int](4)

	q.Enqueue(100)
	q.Enqueue(200)
	_, _ = q.Dequeue() // head moves to index 1

	// Tail is at index 2, three values wrap around the end of the buffer.
	q.EnqueueAll(300, 400, 500)
	r.Equal(4, q.Size())
	r.Equal([]int{200, 300, 400, 500}, slices.Collect(q.Drain()))

	// Growing through EnqueueAll.
	q.EnqueueAll(1, 2, 3, 4, 5, 6, 7, 8, 9)
	r.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(q.Values()))
}

func TestArrayQueueEmpty(t *testing.T) {
	r := require.New(t)
	q := queues.NewArrayQueue[string](10)

	_, ok := q.Dequeue()
	r.False(ok)
	_, ok = q.Peek()
	r.False(ok)
	r.Empty(slices.Collect(q.Values()))
}

func TestArrayQueueClear(t *testing.T) {
	r := require.New(t)
	q := queues.NewArrayQueue[int](8)
	q.EnqueueAll(1, 2, 3)
	q.Clear()

	r.Zero(q.Size())
	r.True(q.IsEmpty())

	q.Enqueue(4)
	r.Equal([]int{4}, slices.Collect(q.Values()))
}

func TestArrayQueueDrainSeesNewElements(t *testing.T) {
	r := require.New(t)
	q := queues.NewArrayQueue[int](2)
	q.Enqueue(1)

	var seen []int
	for v := range q.Drain() {
		seen = append(seen, v)
		if v < 4 {
			q.Enqueue(v + 1)
		}
	}
	r.Equal([]int{1, 2, 3, 4}, seen)
}
