package seqs

// Map applies transform to each item of s.
func Map[T, R any](s Seq[T], transform func(T) R) Seq[R] {
	if transform == nil {
		panic(invalidArgument("Map", "transform"))
	}
	return MapIndexed(s, func(_ int, v T) R { return transform(v) })
}

// MapIndexed is like Map, the transform also receives the position of the item.
func MapIndexed[T, R any](s Seq[T], transform func(int, T) R) Seq[R] {
	if transform == nil {
		panic(invalidArgument("MapIndexed", "transform"))
	}
	return New(func() Cursor[R] {
		src := s.Cursor()
		idx := 0
		return newStepCursor(func() (R, bool, error) {
			var zero R
			v, ok, err := Pull(src)
			if !ok {
				return zero, false, err
			}
			r := transform(idx, v)
			idx++
			return r, true, nil
		})
	})
}

// FlatMap maps every item of s to a sequence and walks those sequences in
// order. Items mapped to an empty sequence contribute nothing.
func FlatMap[T, R any](s Seq[T], fn func(T) Seq[R]) Seq[R] {
	if fn == nil {
		panic(invalidArgument("FlatMap", "function"))
	}
	return New(func() Cursor[R] {
		outer := s.Cursor()
		var inner Cursor[R]
		return newStepCursor(func() (R, bool, error) {
			var zero R
			for {
				if inner != nil {
					if inner.HasNext() {
						r, err := inner.Next()
						return r, err == nil, err
					}
					inner = nil
				}
				v, ok, err := Pull(outer)
				if !ok {
					return zero, false, err
				}
				inner = fn(v).Cursor()
			}
		})
	})
}

// Flatten concatenates a sequence of sequences.
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return FlatMap(s, func(inner Seq[T]) Seq[T] { return inner })
}

// Where keeps the items matching any of the predicates. Without
// predicates every item is kept.
func Where[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("Where", preds, false)
	if len(preds) == 0 {
		return s
	}
	match := anyOf(preds)
	return filter(s, match)
}

// WhereNot drops the items matching any of the predicates.
func WhereNot[T any](s Seq[T], preds ...func(T) bool) Seq[T] {
	checkPredicates("WhereNot", preds, false)
	if len(preds) == 0 {
		return s
	}
	match := anyOf(preds)
	return filter(s, func(v T) bool { return !match(v) })
}

func filter[T any](s Seq[T], keep func(T) bool) Seq[T] {
	return New(func() Cursor[T] {
		src := s.Cursor()
		return newStepCursor(func() (T, bool, error) {
			for {
				v, ok, err := Pull(src)
				if !ok {
					return v, false, err
				}
				if keep(v) {
					return v, true, nil
				}
			}
		})
	})
}

// Concat walks each sequence in argument order.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	if len(seqs) == 0 {
		return Seq[T]{}
	}
	seqs = append([]Seq[T](nil), seqs...)
	return New(func() Cursor[T] {
		idx := 0
		var cur Cursor[T]
		return newStepCursor(func() (T, bool, error) {
			var zero T
			for {
				if cur == nil {
					if idx >= len(seqs) {
						return zero, false, nil
					}
					cur = seqs[idx].Cursor()
					idx++
				}
				v, ok, err := Pull(cur)
				if ok || err != nil {
					return v, ok, err
				}
				cur = nil
			}
		})
	})
}

// ConcatFunc yields each item of s followed directly by the items of
// after(item). after may return the zero Seq to splice in nothing.
func ConcatFunc[T any](s Seq[T], after func(T) Seq[T]) Seq[T] {
	if after == nil {
		panic(invalidArgument("ConcatFunc", "function"))
	}
	return New(func() Cursor[T] {
		src := s.Cursor()
		var spliced Cursor[T]
		return newStepCursor(func() (T, bool, error) {
			if spliced != nil {
				v, ok, err := Pull(spliced)
				if ok || err != nil {
					return v, ok, err
				}
				spliced = nil
			}
			v, ok, err := Pull(src)
			if !ok {
				return v, false, err
			}
			spliced = after(v).Cursor()
			return v, true, nil
		})
	})
}

// Append adds items after the end of s.
func Append[T any](s Seq[T], items ...T) Seq[T] {
	return Concat(s, FromSlice(items))
}

// Prepend adds items before the start of s.
func Prepend[T any](s Seq[T], items ...T) Seq[T] {
	return Concat(FromSlice(items), s)
}

// Distinct drops items that were already produced by the same traversal.
// Memory grows with the number of unique items.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy drops items whose key was already produced by the same traversal.
func DistinctBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		panic(invalidArgument("DistinctBy", "key function"))
	}
	return New(func() Cursor[T] {
		src := s.Cursor()
		seen := make(map[K]struct{})
		return newStepCursor(func() (T, bool, error) {
			for {
				v, ok, err := Pull(src)
				if !ok {
					return v, false, err
				}
				k := key(v)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				return v, true, nil
			}
		})
	})
}

// Peek calls action on each item as it passes through, without changing it.
// Useful for debugging or counting pulls.
func Peek[T any](s Seq[T], action func(T)) Seq[T] {
	if action == nil {
		panic(invalidArgument("Peek", "action"))
	}
	return Map(s, func(v T) T {
		action(v)
		return v
	})
}

// Indexed pairs an item with its position in the traversal.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate pairs every item with its position, starting at 0.
func Enumerate[T any](s Seq[T]) Seq[Indexed[T]] {
	return MapIndexed(s, func(i int, v T) Indexed[T] { return Indexed[T]{Index: i, Value: v} })
}

// Pair holds one item of each input of Zip.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs items of a and b. It ends with the shorter input and never
// pulls from b once a is drained.
func Zip[T1, T2 any](a Seq[T1], b Seq[T2]) Seq[Pair[T1, T2]] {
	return New(func() Cursor[Pair[T1, T2]] {
		ca, cb := a.Cursor(), b.Cursor()
		return newStepCursor(func() (Pair[T1, T2], bool, error) {
			var p Pair[T1, T2]
			v1, ok, err := Pull(ca)
			if !ok {
				return p, false, err
			}
			v2, ok, err := Pull(cb)
			if !ok {
				return p, false, err
			}
			p.V1, p.V2 = v1, v2
			return p, true, nil
		})
	})
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
func Scan[T, R any](s Seq[T], initial R, reducer func(R, T) R) Seq[R] {
	if reducer == nil {
		panic(invalidArgument("Scan", "reducer"))
	}
	return New(func() Cursor[R] {
		src := s.Cursor()
		acc := initial
		return newStepCursor(func() (R, bool, error) {
			v, ok, err := Pull(src)
			if !ok {
				return acc, false, err
			}
			acc = reducer(acc, v)
			return acc, true, nil
		})
	})
}
