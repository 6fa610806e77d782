package seqs

import (
	"cmp"
	"slices"
)

// buffered drains the parent into a slice on the first pull of every
// traversal, lets arrange reorder it, then replays the slice.
func buffered[T any](s Seq[T], arrange func([]T)) Seq[T] {
	return New(func() Cursor[T] {
		src := s.Cursor()
		var items []T
		loaded := false
		idx := 0
		return newStepCursor(func() (T, bool, error) {
			var zero T
			if !loaded {
				loaded = true
				for {
					v, ok, err := Pull(src)
					if err != nil {
						return zero, false, err
					}
					if !ok {
						break
					}
					items = append(items, v)
				}
				arrange(items)
			}
			if idx >= len(items) {
				return zero, false, nil
			}
			v := items[idx]
			items[idx] = zero
			idx++
			return v, true, nil
		})
	})
}

// Reverse yields the items of s in reverse order. Each traversal buffers
// the whole parent first.
func Reverse[T any](s Seq[T]) Seq[T] {
	return buffered(s, func(items []T) { slices.Reverse(items) })
}

// Sort yields the items of s in ascending order. Each traversal buffers
// the whole parent first.
func Sort[T cmp.Ordered](s Seq[T]) Seq[T] {
	return buffered(s, func(items []T) { slices.Sort(items) })
}

// SortDesc yields the items of s in descending order.
func SortDesc[T cmp.Ordered](s Seq[T]) Seq[T] {
	return buffered(s, func(items []T) {
		slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(b, a) })
	})
}

// SortFunc yields the items of s ordered by compare. The sort is stable.
func SortFunc[T any](s Seq[T], compare func(a, b T) int) Seq[T] {
	if compare == nil {
		panic(invalidArgument("SortFunc", "compare function"))
	}
	return buffered(s, func(items []T) {
		slices.SortStableFunc(items, compare)
	})
}
