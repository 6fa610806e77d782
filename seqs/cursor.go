package seqs

// Cursor is the state of a single traversal over a Seq.
//
// HasNext reports whether Next will produce another item. It may pull at
// most one item of lookahead from upstream, and calling it repeatedly
// without Next does not pull again.
//
// Next returns the next item and moves the cursor forward once. Calling it
// when HasNext reports false returns ErrExhausted. An error raised upstream
// is returned from Next exactly once, after which the cursor is exhausted.
type Cursor[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// StepFunc produces the next item of a traversal. ok is false once the
// traversal is over. A non-nil error ends the traversal. A StepFunc is not
// called again after it reported the end.
type StepFunc[T any] func() (item T, ok bool, err error)

// stepCursor adapts a StepFunc into a Cursor with one item of lookahead.
type stepCursor[T any] struct {
	step    StepFunc[T]
	item    T
	err     error
	pending bool // item or err is waiting to be returned by Next
	done    bool
}

func newStepCursor[T any](step StepFunc[T]) *stepCursor[T] {
	return &stepCursor[T]{step: step}
}

func (c *stepCursor[T]) HasNext() bool {
	if c.pending {
		return true
	}
	if c.done {
		return false
	}
	item, ok, err := c.step()
	switch {
	case err != nil:
		c.err = err
		c.pending = true
		c.done = true
		c.step = nil
	case !ok:
		c.done = true
		c.step = nil
		return false
	default:
		c.item = item
		c.pending = true
	}
	return true
}

func (c *stepCursor[T]) Next() (T, error) {
	var zero T
	if !c.HasNext() {
		return zero, ErrExhausted
	}
	c.pending = false
	if c.err != nil {
		err := c.err
		c.err = nil
		return zero, err
	}
	item := c.item
	c.item = zero
	return item, nil
}

// Pull advances c once. ok is false when c is drained or has failed.
func Pull[T any](c Cursor[T]) (item T, ok bool, err error) {
	if !c.HasNext() {
		return item, false, nil
	}
	item, err = c.Next()
	if err != nil {
		return item, false, err
	}
	return item, true, nil
}

type emptyCursor[T any] struct{}

func (emptyCursor[T]) HasNext() bool { return false }

func (emptyCursor[T]) Next() (T, error) {
	var zero T
	return zero, ErrExhausted
}

// sliceCursor walks a fixed slice by index.
type sliceCursor[T any] struct {
	items []T
	idx   int
}

func (c *sliceCursor[T]) HasNext() bool { return c.idx < len(c.items) }

func (c *sliceCursor[T]) Next() (T, error) {
	if c.idx >= len(c.items) {
		var zero T
		return zero, ErrExhausted
	}
	v := c.items[c.idx]
	c.idx++
	return v, nil
}
