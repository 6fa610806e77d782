package seqs

import "reseq/internal/safe"

// Equal reports whether a and b produce the same items in the same order.
// It stops at the first difference and never pulls past it.
func Equal[T comparable](a, b Seq[T]) (bool, error) {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, using eq to compare items.
func EqualFunc[T1, T2 any](a Seq[T1], b Seq[T2], eq func(T1, T2) bool) (bool, error) {
	if eq == nil {
		panic(invalidArgument("EqualFunc", "equality function"))
	}
	var equal bool
	err := safe.CallE(func() error {
		ca, cb := a.Cursor(), b.Cursor()
		for {
			va, okA, err := Pull(ca)
			if err != nil {
				return err
			}
			vb, okB, err := Pull(cb)
			if err != nil {
				return err
			}
			if okA != okB {
				return nil
			}
			if !okA {
				equal = true
				return nil
			}
			if !eq(va, vb) {
				return nil
			}
		}
	})
	return equal && err == nil, err
}

// ContainsSeq reports whether needle occurs as a contiguous run inside
// haystack. The needle is buffered once. The haystack is pulled one item at
// a time and never past the end of the first match. An empty needle is
// contained in every haystack.
func ContainsSeq[T comparable](haystack, needle Seq[T]) (bool, error) {
	return ContainsSeqFunc(haystack, needle, func(h, n T) bool { return h == n })
}

// ContainsSeqFunc is like ContainsSeq, using eq to compare a haystack item
// with a needle item.
func ContainsSeqFunc[T1, T2 any](haystack Seq[T1], needle Seq[T2], eq func(T1, T2) bool) (bool, error) {
	if eq == nil {
		panic(invalidArgument("ContainsSeqFunc", "equality function"))
	}
	want, err := Collect(needle)
	if err != nil {
		return false, err
	}
	if len(want) == 0 {
		return true, nil
	}

	var found bool
	err = safe.CallE(func() error {
		// matched holds, for each open window, how many needle items it
		// has matched so far. Windows are opened at every haystack item
		// and dropped at the first mismatch.
		matched := make([]int, 0, len(want))
		c := haystack.Cursor()
		for {
			v, ok, err := Pull(c)
			if !ok {
				return err
			}
			matched = append(matched, 0)
			open := matched[:0]
			for _, n := range matched {
				if !eq(v, want[n]) {
					continue
				}
				if n+1 == len(want) {
					found = true
					return nil
				}
				open = append(open, n+1)
			}
			matched = open
		}
	})
	return found, err
}
