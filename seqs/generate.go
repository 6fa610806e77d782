package seqs

import "math/rand/v2"

// Unfold yields seed, then repeatedly next applied to the previous item
// until next reports false. When next never reports false the sequence is
// infinite and must be bounded downstream, for example with Take.
func Unfold[T any](seed T, next func(prev T) (T, bool)) Seq[T] {
	if next == nil {
		panic(invalidArgument("Unfold", "next function"))
	}
	return UnfoldIndexed(seed, func(prev T, _ int) (T, bool) { return next(prev) })
}

// UnfoldIndexed is like Unfold, next also receives the position of the
// item it is asked to produce. The seed is at position 0.
func UnfoldIndexed[T any](seed T, next func(prev T, index int) (T, bool)) Seq[T] {
	if next == nil {
		panic(invalidArgument("UnfoldIndexed", "next function"))
	}
	return New(func() Cursor[T] {
		var prev T
		idx := 0
		return newStepCursor(func() (T, bool, error) {
			if idx == 0 {
				idx++
				prev = seed
				return seed, true, nil
			}
			v, ok := next(prev, idx)
			if !ok {
				return v, false, nil
			}
			idx++
			prev = v
			return v, true, nil
		})
	})
}

// Generate yields next(0), next(1), ... until next reports false.
func Generate[T any](next func(index int) (T, bool)) Seq[T] {
	if next == nil {
		panic(invalidArgument("Generate", "next function"))
	}
	return New(func() Cursor[T] {
		idx := 0
		return newStepCursor(func() (T, bool, error) {
			v, ok := next(idx)
			idx++
			return v, ok, nil
		})
	})
}

// RandomInts generates a sequence of random integers of the specified size.
// Every traversal draws new values, wrap it with Cache to replay them.
func RandomInts(size int) Seq[int] {
	return Generate(func(i int) (int, bool) {
		if i >= size {
			return 0, false
		}
		return rand.Int(), true
	})
}

// Range yields start, start+step, ... up to but excluding end. A zero step
// yields nothing.
func Range(start, end, step int) Seq[int] {
	if step == 0 {
		return Seq[int]{}
	}
	return Generate(func(i int) (int, bool) {
		v := start + i*step
		return v, step > 0 && v < end || step < 0 && v > end
	})
}

// Repeat yields value count times. A negative count repeats forever.
func Repeat[T any](value T, count int) Seq[T] {
	return Generate(func(i int) (T, bool) {
		return value, count < 0 || i < count
	})
}
