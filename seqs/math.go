package seqs

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func Sum[T Number](s Seq[T]) (T, error) {
	var zero T
	return Reduce(s, zero, func(total, v T) T { return total + v })
}

// Min returns the smallest item. ok is false for an empty sequence.
func Min[T Number](s Seq[T]) (T, bool, error) {
	return extreme(s, func(v, cur T) bool { return v < cur })
}

// Max returns the largest item. ok is false for an empty sequence.
func Max[T Number](s Seq[T]) (T, bool, error) {
	return extreme(s, func(v, cur T) bool { return v > cur })
}

func extreme[T Number](s Seq[T], better func(v, cur T) bool) (T, bool, error) {
	var best T
	first := true
	err := drain(s, func(v T) bool {
		if first || better(v, best) {
			best = v
			first = false
		}
		return true
	})
	return best, !first, err
}
