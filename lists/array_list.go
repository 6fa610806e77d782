package lists

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"reseq/seqs"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ArrayList is a slice-backed List. It doubles as a LIFO stack through
// Push, Pop and Last. It is not safe for concurrent use.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, fmt.Errorf("get %d of %d: %w", index, len(al.data), ErrIndexOutOfBounds)
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return fmt.Errorf("set %d of %d: %w", index, len(al.data), ErrIndexOutOfBounds)
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, fmt.Errorf("remove %d of %d: %w", index, len(al.data), ErrIndexOutOfBounds)
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

// Push appends value, treating the end of the list as the top of a stack.
func (al *ArrayList[T]) Push(value T) {
	al.data = append(al.data, value)
}

// Pop removes and returns the last element.
func (al *ArrayList[T]) Pop() (T, bool) {
	var zero T
	n := len(al.data)
	if n == 0 {
		return zero, false
	}
	v := al.data[n-1]
	al.data[n-1] = zero
	al.data = al.data[:n-1]
	return v, true
}

// Last returns the last element without removing it.
func (al *ArrayList[T]) Last() (T, bool) {
	if len(al.data) == 0 {
		var zero T
		return zero, false
	}
	return al.data[len(al.data)-1], true
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.data, predicate)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) Seq() seqs.Seq[T] {
	return seqs.New(func() seqs.Cursor[T] {
		return &listCursor[T]{list: al}
	})
}

// Snapshot returns a sequence of the elements as they are now.
func (al *ArrayList[T]) Snapshot() seqs.Seq[T] {
	return seqs.FromSlice(al.data)
}

// listCursor reads the list by index, so it tolerates appends and
// stops early if elements are removed underneath it.
type listCursor[T any] struct {
	list *ArrayList[T]
	idx  int
}

func (c *listCursor[T]) HasNext() bool {
	return c.idx < len(c.list.data)
}

func (c *listCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, seqs.ErrExhausted
	}
	v := c.list.data[c.idx]
	c.idx++
	return v, nil
}
