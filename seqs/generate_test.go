package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reseq/seqs"
)

func TestUnfold(t *testing.T) {
	r := require.New(t)

	countdown := seqs.Unfold(3, func(prev int) (int, bool) { return prev - 1, prev > 0 })
	r.Equal([]int{3, 2, 1, 0}, collect(t, countdown))
	r.Equal([]int{3, 2, 1, 0}, collect(t, countdown))

	// The seed alone when next ends immediately.
	r.Equal([]string{"seed"}, collect(t, seqs.Unfold("seed", func(string) (string, bool) { return "", false })))

	fib := seqs.Map(
		seqs.Unfold([2]int{0, 1}, func(p [2]int) ([2]int, bool) { return [2]int{p[1], p[0] + p[1]}, true }),
		func(p [2]int) int { return p[0] },
	)
	r.Equal([]int{0, 1, 1, 2, 3, 5, 8, 13}, collect(t, seqs.Take(fib, 8)))
}

func TestUnfoldIndexed(t *testing.T) {
	r := require.New(t)

	var indexes []int
	s := seqs.UnfoldIndexed("a", func(prev string, i int) (string, bool) {
		indexes = append(indexes, i)
		return prev + "a", i < 3
	})
	r.Equal([]string{"a", "aa", "aaa"}, collect(t, s))
	r.Equal([]int{1, 2, 3}, indexes)
}

func TestGenerate(t *testing.T) {
	r := require.New(t)

	squares := seqs.Generate(func(i int) (int, bool) { return i * i, true })
	r.Equal([]int{0, 1, 4, 9}, collect(t, seqs.Take(squares, 4)))

	r.Equal([]int{5, 3, 1}, collect(t, seqs.Range(5, 0, -2)))
	r.Empty(collect(t, seqs.Range(0, 5, 0)))
	r.Empty(collect(t, seqs.Range(5, 0, 1)))

	r.Equal([]string{"x", "x"}, collect(t, seqs.Repeat("x", 2)))
	r.Empty(collect(t, seqs.Repeat("x", 0)))
	r.Len(collect(t, seqs.Take(seqs.Repeat("x", -1), 50)), 50)

	r.Len(collect(t, seqs.RandomInts(7)), 7)
}
