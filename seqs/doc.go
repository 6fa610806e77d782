/*
Package seqs provides lazy, re-traversable sequences built from composable
combinators.

A [Seq] is a description of how to produce items, not a container. Every
call to [Seq.Cursor] starts an independent traversal, so the same Seq can be
walked any number of times, concurrently or in nested loops, and each walk
sees the whole sequence. Combinators such as [Map], [Where], [Take] or
[Interleave] return new Seqs and pull from their parents one item at a
time, on demand. Nothing is evaluated until a cursor is advanced.

The package includes:

  - Sources: [Of], [FromSlice], [FromIter], [Unfold], [Generate], [Range], [Repeat].
  - Transformations: [Map], [FlatMap], [Where], [Concat], [ConcatFunc], [Distinct], [Zip], [Scan].
  - Flow Control: [Take], [Skip], [Chunk], [Window] and the trimming family
    [NotAsLongAs], [NotBefore], [After], [AsLongAs], [Before], [NotAfter].
  - Short-circuit algorithms: [Equal], [ContainsSeq], [Any], [All], [First].
  - Memoization: [Cache].

# Cursors

A [Cursor] has one item of lookahead at most. Calling HasNext twice does
not pull twice, and Next past the end returns [ErrExhausted].

	c := seqs.Range(0, 3, 1).Cursor()
	for c.HasNext() {
		v, err := c.Next()
		...
	}

Seq.All offers the same traversal as a range-over-func iterator.

# Infinite Sequences

Generators may never end. Bound them downstream:

	powers := seqs.Unfold(1, func(prev int) (int, bool) { return prev * 2, true })
	first, _ := seqs.Collect(seqs.Take(powers, 10))

# Caching

[Cache] wraps a sequence whose source is expensive, single-pass or
non-deterministic. The source is traversed at most once, all cursors
replay the same buffered items, and cursors may run on different
goroutines.

# Error Handling

Passing a nil function to a constructor panics with an error wrapping
[ErrInvalidArgument]. Errors raised by a cursor travel downstream through
Next. Sinks such as [Collect] and [Reduce] return them, along with any
panic of a user callback converted into an error.
*/
package seqs
