package seqs

// First returns the first item of s, pulling nothing else.
func First[T any](s Seq[T]) (T, bool, error) {
	var first T
	found := false
	err := drain(s, func(v T) bool {
		first, found = v, true
		return false
	})
	return first, found, err
}

// Last returns the final item of s, draining it.
func Last[T any](s Seq[T]) (T, bool, error) {
	var last T
	found := false
	err := drain(s, func(v T) bool {
		last, found = v, true
		return true
	})
	return last, found, err
}

// Any reports whether some item satisfies predicate. It stops at the first match.
func Any[T any](s Seq[T], predicate func(T) bool) (bool, error) {
	if predicate == nil {
		panic(invalidArgument("Any", "predicate"))
	}
	found := false
	err := drain(s, func(v T) bool {
		found = predicate(v)
		return !found
	})
	return found, err
}

// All reports whether every item satisfies predicate. It stops at the first miss.
func All[T any](s Seq[T], predicate func(T) bool) (bool, error) {
	if predicate == nil {
		panic(invalidArgument("All", "predicate"))
	}
	ok := true
	err := drain(s, func(v T) bool {
		ok = predicate(v)
		return ok
	})
	return ok, err
}

// Contains reports whether target is an item of s.
func Contains[T comparable](s Seq[T], target T) (bool, error) {
	return Any(s, func(v T) bool { return v == target })
}

// Count drains s and returns the number of items.
func Count[T any](s Seq[T]) (int, error) {
	count := 0
	err := drain(s, func(T) bool {
		count++
		return true
	})
	return count, err
}

// Reduce aggregates the elements of s using the reducer function, starting from the initial value.
func Reduce[T, R any](s Seq[T], initial R, reducer func(R, T) R) (R, error) {
	if reducer == nil {
		panic(invalidArgument("Reduce", "reducer"))
	}
	acc := initial
	err := drain(s, func(v T) bool {
		acc = reducer(acc, v)
		return true
	})
	return acc, err
}
