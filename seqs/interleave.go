package seqs

import "reseq/queues"

// Interleave takes one item from each live sequence per round, in
// argument order, until all of them are drained. A drained sequence is
// dropped from later rounds.
func Interleave[T any](seqs ...Seq[T]) Seq[T] {
	if len(seqs) == 0 {
		return Seq[T]{}
	}
	seqs = append([]Seq[T](nil), seqs...)
	return New(func() Cursor[T] {
		live := queues.NewArrayQueue[Cursor[T]](len(seqs))
		for _, s := range seqs {
			live.Enqueue(s.Cursor())
		}
		return newStepCursor(func() (T, bool, error) {
			for {
				c, ok := live.Dequeue()
				if !ok {
					var zero T
					return zero, false, nil
				}
				v, ok, err := Pull(c)
				if err != nil {
					return v, false, err
				}
				if ok {
					live.Enqueue(c)
					return v, true, nil
				}
			}
		})
	})
}
