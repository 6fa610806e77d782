package seqs

// Union yields the items of a followed by those of b, without duplicates.
func Union[T comparable](a, b Seq[T]) Seq[T] {
	return Distinct(Concat(a, b))
}

// UnionBy is like Union, two items being duplicates when their keys are equal.
func UnionBy[T any, K comparable](a, b Seq[T], key func(T) K) Seq[T] {
	return DistinctBy(Concat(a, b), key)
}

// Intersection yields the items of a that also occur in b, without
// duplicates, in the order of a. b is drained on the first pull of every
// traversal.
func Intersection[T comparable](a, b Seq[T]) Seq[T] {
	return IntersectionBy(a, b, identity[T])
}

// IntersectionBy is like Intersection, comparing items by key. Useful for
// non-comparable types or custom uniqueness logic.
func IntersectionBy[T any, K comparable](a, b Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		panic(invalidArgument("IntersectionBy", "key function"))
	}
	return keyFilter(a, b, key, true)
}

// Difference yields the items of a that do not occur in b, without
// duplicates. b is drained on the first pull of every traversal.
func Difference[T comparable](a, b Seq[T]) Seq[T] {
	return DifferenceBy(a, b, identity[T])
}

// DifferenceBy is like Difference, comparing items by key.
func DifferenceBy[T any, K comparable](a, b Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		panic(invalidArgument("DifferenceBy", "key function"))
	}
	return keyFilter(a, b, key, false)
}

// SymmetricDifference yields the items found in exactly one of a and b:
// first those of a, then those of b.
func SymmetricDifference[T comparable](a, b Seq[T]) Seq[T] {
	return Concat(Difference(a, b), Difference(b, a))
}

func identity[T any](v T) T { return v }

// keyFilter keeps the first item of a for each key whose presence in b
// equals want.
func keyFilter[T any, K comparable](a, b Seq[T], key func(T) K, want bool) Seq[T] {
	return New(func() Cursor[T] {
		var other map[K]struct{}
		src := a.Cursor()
		seen := make(map[K]struct{})
		return newStepCursor(func() (T, bool, error) {
			var zero T
			if other == nil {
				other = make(map[K]struct{})
				c := b.Cursor()
				for {
					v, ok, err := Pull(c)
					if err != nil {
						return zero, false, err
					}
					if !ok {
						break
					}
					other[key(v)] = struct{}{}
				}
			}
			for {
				v, ok, err := Pull(src)
				if !ok {
					return zero, false, err
				}
				k := key(v)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				if _, found := other[k]; found == want {
					return v, true, nil
				}
			}
		})
	})
}
