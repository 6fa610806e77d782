package seqs

import (
	"iter"
	"slices"

	"reseq/internal/safe"
)

// Seq is a lazy, re-traversable description of how to produce items.
//
// A Seq never holds items itself (except through Cache). Every call to
// Cursor starts an independent traversal. The zero value is the empty
// sequence.
type Seq[T any] struct {
	newCursor func() Cursor[T]
}

// New returns a Seq whose traversals are created by factory.
func New[T any](factory func() Cursor[T]) Seq[T] {
	if factory == nil {
		panic(invalidArgument("New", "cursor factory"))
	}
	return Seq[T]{newCursor: factory}
}

// Cursor starts a new traversal.
func (s Seq[T]) Cursor() Cursor[T] {
	if s.newCursor == nil {
		return emptyCursor[T]{}
	}
	return s.newCursor()
}

// All returns a range-over-func view of the sequence. Each range loop
// walks a fresh cursor. An upstream error is raised as a panic, use
// Collect or ForEach to receive it as a value instead.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := s.Cursor()
		for c.HasNext() {
			v, err := c.Next()
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Empty returns a sequence without items.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Once returns a sequence holding exactly v.
func Once[T any](v T) Seq[T] {
	return FromSlice([]T{v})
}

// Of returns a sequence of the given items.
func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice returns a sequence replaying items in order. The slice is
// copied, so later changes by the caller are not observed.
func FromSlice[T any](items []T) Seq[T] {
	if len(items) == 0 {
		return Seq[T]{}
	}
	items = slices.Clone(items)
	return New(func() Cursor[T] {
		return &sliceCursor[T]{items: items}
	})
}

// FromIter adapts a single-pass producer. The producer is consumed at most
// once, its output is buffered by a Cache so that the returned sequence
// may be traversed any number of times.
//
// The producer runs as a pull coroutine which is released once it is
// drained. A producer that is never drained keeps its coroutine alive.
func FromIter[T any](producer iter.Seq[T], opts ...CacheOption) Seq[T] {
	if producer == nil {
		panic(invalidArgument("FromIter", "producer"))
	}
	src := New(func() Cursor[T] {
		next, stop := iter.Pull(producer)
		return newStepCursor(func() (T, bool, error) {
			v, ok := next()
			if !ok {
				stop()
			}
			return v, ok, nil
		})
	})
	return Cache(src, opts...)
}

// Defer calls fn each time a traversal starts and walks the sequence it
// returns.
func Defer[T any](fn func() Seq[T]) Seq[T] {
	if fn == nil {
		panic(invalidArgument("Defer", "function"))
	}
	return New(func() Cursor[T] {
		return fn().Cursor()
	})
}

// Collect drains a fresh cursor into a slice. A panic raised by a callback
// during the traversal is returned as a *safe.RecoveredError.
func Collect[T any](s Seq[T]) ([]T, error) {
	var out []T
	err := drain(s, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out, err
}

// ForEach calls fn for each item of a fresh traversal.
func ForEach[T any](s Seq[T], fn func(T)) error {
	if fn == nil {
		panic(invalidArgument("ForEach", "function"))
	}
	return drain(s, func(v T) bool {
		fn(v)
		return true
	})
}

// drain walks a fresh cursor until fn returns false or the sequence ends.
func drain[T any](s Seq[T], fn func(T) bool) error {
	return safe.CallE(func() error {
		c := s.Cursor()
		for c.HasNext() {
			v, err := c.Next()
			if err != nil {
				return err
			}
			if !fn(v) {
				return nil
			}
		}
		return nil
	})
}

// FromStep returns a sequence whose traversals are driven by step
// functions. newStep is called once per traversal, so any state the step
// function closes over is private to that traversal.
func FromStep[T any](newStep func() StepFunc[T]) Seq[T] {
	if newStep == nil {
		panic(invalidArgument("FromStep", "step factory"))
	}
	return New(func() Cursor[T] {
		step := newStep()
		if step == nil {
			return emptyCursor[T]{}
		}
		return newStepCursor(step)
	})
}
