package seqs_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"reseq/seqs"
)

func collect[T any](t *testing.T, s seqs.Seq[T]) []T {
	t.Helper()
	items, err := seqs.Collect(s)
	require.NoError(t, err)
	return items
}

func TestMap(t *testing.T) {
	r := require.New(t)

	r.Equal([]string{"1", "2", "3"}, collect(t, seqs.Map(seqs.Of(1, 2, 3), strconv.Itoa)))

	indexed := seqs.MapIndexed(seqs.Of("a", "b"), func(i int, v string) string {
		return strconv.Itoa(i) + v
	})
	r.Equal([]string{"0a", "1b"}, collect(t, indexed))
	// The index restarts with every traversal.
	r.Equal([]string{"0a", "1b"}, collect(t, indexed))
}

func TestMapIsLazy(t *testing.T) {
	r := require.New(t)

	calls := 0
	s := seqs.Map(seqs.Range(0, 100, 1), func(v int) int {
		calls++
		return v
	})
	r.Equal(0, calls)

	r.Equal([]int{0, 1, 2}, collect(t, seqs.Take(s, 3)))
	r.Equal(3, calls)
}

func TestFlatMap(t *testing.T) {
	r := require.New(t)

	s := seqs.FlatMap(seqs.Of(0, 1, 2, 3), func(n int) seqs.Seq[int] {
		return seqs.Repeat(n, n)
	})
	r.Equal([]int{1, 2, 2, 3, 3, 3}, collect(t, s))

	nested := seqs.Of(seqs.Of("a"), seqs.Empty[string](), seqs.Of("b", "c"))
	r.Equal([]string{"a", "b", "c"}, collect(t, seqs.Flatten(nested)))

	// Only the inner sequences needed are created.
	pulls := 0
	infinite := seqs.FlatMap(counted(seqs.Range(0, 1000, 1), &pulls), func(n int) seqs.Seq[int] {
		return seqs.Of(n, n)
	})
	r.Equal([]int{0, 0, 1}, collect(t, seqs.Take(infinite, 3)))
	r.Equal(2, pulls)
}

func TestWhere(t *testing.T) {
	r := require.New(t)

	even := func(v int) bool { return v%2 == 0 }
	big := func(v int) bool { return v > 7 }
	s := seqs.Range(0, 10, 1)

	r.Equal([]int{0, 2, 4, 6, 8}, collect(t, seqs.Where(s, even)))
	r.Equal([]int{0, 2, 4, 6, 8, 9}, collect(t, seqs.Where(s, even, big)))
	r.Equal([]int{1, 3, 5, 7}, collect(t, seqs.WhereNot(s, even, big)))
	r.Equal(collect(t, s), collect(t, seqs.Where(s)))
	r.Equal(collect(t, s), collect(t, seqs.WhereNot(s)))
}

func TestConcat(t *testing.T) {
	r := require.New(t)

	s := seqs.Concat(seqs.Of(1), seqs.Empty[int](), seqs.Of(2, 3))
	r.Equal([]int{1, 2, 3}, collect(t, s))
	r.Empty(collect(t, seqs.Concat[int]()))

	r.Equal([]int{0, 1, 2, 3}, collect(t, seqs.Prepend(seqs.Of(2, 3), 0, 1)))
	r.Equal([]int{2, 3, 4}, collect(t, seqs.Append(seqs.Of(2, 3), 4)))

	// An error in the first part ends the whole traversal.
	boom := errors.New("boom")
	_, err := seqs.Collect(seqs.Concat(failing(boom, 1), seqs.Of(2)))
	r.ErrorIs(err, boom)
}

func TestConcatFunc(t *testing.T) {
	r := require.New(t)

	s := seqs.ConcatFunc(seqs.Of("a", "b", "c"), func(v string) seqs.Seq[string] {
		if v == "b" {
			return seqs.Empty[string]()
		}
		return seqs.Of(v+"1", v+"2")
	})
	r.Equal([]string{"a", "a1", "a2", "b", "c", "c1", "c2"}, collect(t, s))
}

func TestDistinct(t *testing.T) {
	r := require.New(t)

	r.Equal([]int{3, 1, 2}, collect(t, seqs.Distinct(seqs.Of(3, 1, 3, 2, 1))))

	byLen := seqs.DistinctBy(seqs.Of("a", "bb", "c", "dd", "eee"), func(s string) int { return len(s) })
	r.Equal([]string{"a", "bb", "eee"}, collect(t, byLen))
	// Every traversal has its own set of seen keys.
	r.Equal([]string{"a", "bb", "eee"}, collect(t, byLen))
}

func TestZip(t *testing.T) {
	r := require.New(t)

	pulls := 0
	z := seqs.Zip(seqs.Of(1, 2), counted(seqs.Of("a", "b", "c"), &pulls))
	r.Equal([]seqs.Pair[int, string]{{V1: 1, V2: "a"}, {V1: 2, V2: "b"}}, collect(t, z))
	r.Equal(2, pulls)
}

func TestEnumerate(t *testing.T) {
	r := require.New(t)

	got := collect(t, seqs.Enumerate(seqs.Of("x", "y")))
	r.Equal([]seqs.Indexed[string]{{Index: 0, Value: "x"}, {Index: 1, Value: "y"}}, got)
}

func TestScan(t *testing.T) {
	r := require.New(t)

	sums := seqs.Scan(seqs.Range(1, 5, 1), 0, func(acc, v int) int { return acc + v })
	r.Equal([]int{1, 3, 6, 10}, collect(t, sums))
	r.Equal([]int{1, 3, 6, 10}, collect(t, sums))
}

func TestOrdering(t *testing.T) {
	r := require.New(t)

	s := seqs.Of(3, 1, 4, 1, 5)
	r.Equal([]int{1, 1, 3, 4, 5}, collect(t, seqs.Sort(s)))
	r.Equal([]int{5, 4, 3, 1, 1}, collect(t, seqs.SortDesc(s)))
	r.Equal([]int{5, 1, 4, 1, 3}, collect(t, seqs.Reverse(s)))
	// The parent is untouched.
	r.Equal([]int{3, 1, 4, 1, 5}, collect(t, s))

	type user struct {
		name string
		age  int
	}
	users := seqs.Of(user{"b", 30}, user{"a", 20}, user{"c", 30})
	byAge := seqs.SortFunc(users, func(x, y user) int { return x.age - y.age })
	r.Equal([]user{{"a", 20}, {"b", 30}, {"c", 30}}, collect(t, byAge))

	boom := errors.New("boom")
	_, err := seqs.Collect(seqs.Sort(failing(boom, 2, 1)))
	r.ErrorIs(err, boom)
}

func TestInterleave(t *testing.T) {
	r := require.New(t)

	s := seqs.Interleave(seqs.Of(1, 3, 5, 7), seqs.Of(2, 4, 6, 8, 10, 12))
	r.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 10, 12}, collect(t, s))
	r.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 10, 12}, collect(t, s))

	three := seqs.Interleave(seqs.Of("a"), seqs.Empty[string](), seqs.Of("b", "c"), seqs.Of("d"))
	r.Equal([]string{"a", "b", "d", "c"}, collect(t, three))

	r.Empty(collect(t, seqs.Interleave[int]()))

	// Infinite inputs are fine as long as the result is bounded.
	ones, twos := seqs.Repeat(1, -1), seqs.Repeat(2, -1)
	r.Equal([]int{1, 2, 1, 2, 1}, collect(t, seqs.Take(seqs.Interleave(ones, twos), 5)))
}
