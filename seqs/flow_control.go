package seqs

// Take yields at most n items. The parent is not pulled once n items were
// produced.
func Take[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return Seq[T]{}
	}
	return New(func() Cursor[T] {
		src := s.Cursor()
		count := 0
		return newStepCursor(func() (T, bool, error) {
			var zero T
			if count >= n {
				return zero, false, nil
			}
			count++
			return Pull(src)
		})
	})
}

// Skip drops the first n items.
func Skip[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return s
	}
	return New(func() Cursor[T] {
		src := s.Cursor()
		skipped := 0
		return newStepCursor(func() (T, bool, error) {
			for skipped < n {
				v, ok, err := Pull(src)
				if !ok {
					return v, false, err
				}
				skipped++
			}
			return Pull(src)
		})
	})
}

type phase uint8

const (
	skipping phase = iota
	passing
	stopped
)

// trimRule decides, for an item pulled in the given phase, whether the item
// is emitted and which phase follows.
type trimRule[T any] func(p phase, v T) (emit bool, next phase)

// trim runs the shared skip/trim state machine. Once stopped the parent
// cursor is never advanced again.
func trim[T any](s Seq[T], start phase, rule trimRule[T]) Seq[T] {
	return New(func() Cursor[T] {
		src := s.Cursor()
		state := start
		return newStepCursor(func() (T, bool, error) {
			var zero T
			for state != stopped {
				v, ok, err := Pull(src)
				if !ok {
					return zero, false, err
				}
				emit, next := rule(state, v)
				state = next
				if emit {
					return v, true, nil
				}
			}
			return zero, false, nil
		})
	})
}

// NotAsLongAs drops items while any predicate holds and yields everything
// from the first item for which none does.
func NotAsLongAs[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("NotAsLongAs", preds, true)
	match := anyOf(preds)
	return trim(s, skipping, func(p phase, v T) (bool, phase) {
		if p == skipping && match(v) {
			return false, skipping
		}
		return true, passing
	})
}

// NotBefore drops items up to the first one matching a predicate, which
// is yielded together with everything after it.
func NotBefore[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("NotBefore", preds, true)
	match := anyOf(preds)
	return trim(s, skipping, func(p phase, v T) (bool, phase) {
		if p == skipping && !match(v) {
			return false, skipping
		}
		return true, passing
	})
}

// After drops items up to and including the first one matching a
// predicate and yields everything after it.
func After[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("After", preds, true)
	match := anyOf(preds)
	return trim(s, skipping, func(p phase, v T) (bool, phase) {
		if p == passing {
			return true, passing
		}
		if match(v) {
			return false, passing
		}
		return false, skipping
	})
}

// AsLongAs yields items while any predicate holds and stops at the first
// item for which none does.
func AsLongAs[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("AsLongAs", preds, true)
	match := anyOf(preds)
	return trim(s, passing, func(_ phase, v T) (bool, phase) {
		if match(v) {
			return true, passing
		}
		return false, stopped
	})
}

// Before yields items up to, but not including, the first one matching a
// predicate.
func Before[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("Before", preds, true)
	match := anyOf(preds)
	return trim(s, passing, func(_ phase, v T) (bool, phase) {
		if match(v) {
			return false, stopped
		}
		return true, passing
	})
}

// NotAfter yields items up to and including the first one matching a
// predicate.
func NotAfter[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("NotAfter", preds, true)
	match := anyOf(preds)
	return trim(s, passing, func(_ phase, v T) (bool, phase) {
		if match(v) {
			return true, stopped
		}
		return true, passing
	})
}

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](s Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return Seq[[]T]{}
	}
	return New(func() Cursor[[]T] {
		src := s.Cursor()
		return newStepCursor(func() ([]T, bool, error) {
			batch := make([]T, 0, size)
			for len(batch) < size {
				v, ok, err := Pull(src)
				if err != nil {
					return nil, false, err
				}
				if !ok {
					break
				}
				batch = append(batch, v)
			}
			return batch, len(batch) > 0, nil
		})
	})
}

// Window creates a sliding window over the input sequence.
// size: window size.
// step: step size for each slide.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Chunk.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
func Window[T any](s Seq[T], size, step int) Seq[[]T] {
	if size <= 0 || step <= 0 {
		return Seq[[]T]{}
	}
	return New(func() Cursor[[]T] {
		src := s.Cursor()
		buffer := make([]T, 0, size)
		skipCount := 0
		return newStepCursor(func() ([]T, bool, error) {
			for {
				v, ok, err := Pull(src)
				if !ok {
					return nil, false, err
				}
				if skipCount > 0 {
					skipCount--
					continue
				}
				buffer = append(buffer, v)
				if len(buffer) < size {
					continue
				}

				output := make([]T, size)
				copy(output, buffer)

				// slide: keep the overlap, or clear and skip the gap
				if step < size {
					copy(buffer, buffer[step:])
					buffer = buffer[:size-step]
				} else {
					buffer = buffer[:0]
					skipCount = step - size
				}
				return output, true, nil
			}
		})
	})
}
