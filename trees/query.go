package trees

import "reseq/seqs"

// Ancestors walks the parent links from n's parent up to the root.
func Ancestors[T comparable](n *Node[T]) seqs.Seq[*Node[T]] {
	return seqs.Defer(func() seqs.Seq[*Node[T]] {
		if n == nil || n.parent == nil {
			return seqs.Empty[*Node[T]]()
		}
		return seqs.Unfold(n.parent, func(p *Node[T]) (*Node[T], bool) {
			return p.parent, p.parent != nil
		})
	})
}

// Root returns the topmost ancestor of n, or n itself. It returns nil for
// a nil node.
func Root[T comparable](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Depth is the number of ancestors of n, 0 for a nil node.
func Depth[T comparable](n *Node[T]) int {
	if n == nil {
		return 0
	}
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Siblings returns the other children of n's parent, in child order.
func Siblings[T comparable](n *Node[T]) seqs.Seq[*Node[T]] {
	return siblings(n, func(all seqs.Seq[*Node[T]], self func(*Node[T]) bool) seqs.Seq[*Node[T]] {
		return seqs.WhereNot(all, self)
	})
}

// NextSiblings returns the children of n's parent that follow n.
func NextSiblings[T comparable](n *Node[T]) seqs.Seq[*Node[T]] {
	return siblings(n, func(all seqs.Seq[*Node[T]], self func(*Node[T]) bool) seqs.Seq[*Node[T]] {
		return seqs.After(all, self)
	})
}

// PreviousSiblings returns the children of n's parent that precede n, in
// child order.
func PreviousSiblings[T comparable](n *Node[T]) seqs.Seq[*Node[T]] {
	return siblings(n, func(all seqs.Seq[*Node[T]], self func(*Node[T]) bool) seqs.Seq[*Node[T]] {
		return seqs.Before(all, self)
	})
}

// NextSibling returns the successor of n among its parent's children.
func NextSibling[T comparable](n *Node[T]) (*Node[T], bool, error) {
	return seqs.First(NextSiblings(n))
}

// PreviousSibling returns the predecessor of n among its parent's children.
func PreviousSibling[T comparable](n *Node[T]) (*Node[T], bool, error) {
	return seqs.Last(PreviousSiblings(n))
}

// siblings applies a positional selection to the children of n's parent,
// locating n by value.
func siblings[T comparable](
	n *Node[T],
	selectFn func(all seqs.Seq[*Node[T]], self func(*Node[T]) bool) seqs.Seq[*Node[T]],
) seqs.Seq[*Node[T]] {
	return seqs.Defer(func() seqs.Seq[*Node[T]] {
		if n == nil || n.parent == nil {
			return seqs.Empty[*Node[T]]()
		}
		return selectFn(n.parent.Children(), hasValue(n.value))
	})
}
