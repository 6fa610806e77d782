// Package trees provides lazily expanded trees and their traversals.
//
// A Node holds a value, an explicit list of children and, optionally, a
// child extractor that computes further children from the node's value the
// first time they are needed. Extracted children are cached per node, so
// repeated traversals see the same *Node values and parent links stay
// stable. Trees built from an extractor may be infinite; bound them with a
// NotBelow traversal or a downstream combinator such as seqs.Take.
//
// Sibling and lookup queries compare nodes by value, so values should be
// unique within one tree.
package trees

import (
	"errors"
	"fmt"

	"reseq/lists"
	"reseq/seqs"
)

// ErrAttached is raised when a node that already has a parent is attached
// to another one.
var ErrAttached = errors.New("node already has a parent")

// Node is a tree element. Its zero value is not usable, see NewNode.
type Node[T comparable] struct {
	value     T
	parent    *Node[T] // Lookup only, never used to reach children.
	explicit  *lists.ArrayList[*Node[T]]
	extract   func(T) seqs.Seq[T]
	derived   seqs.Seq[*Node[T]]         // Cached result of extract.
	extracted *lists.ArrayList[*Node[T]] // Children derived has produced so far.
}

// NewNode returns a detached leaf holding value.
func NewNode[T comparable](value T) *Node[T] {
	return &Node[T]{
		value:    value,
		explicit: lists.NewArrayList[*Node[T]](0),
	}
}

// NewTree returns a root whose descendants are computed by applying
// extract to each node's value.
func NewTree[T comparable](value T, extract func(T) seqs.Seq[T]) *Node[T] {
	return NewNode(value).WithChildrenFunc(extract)
}

// Value returns the value held by n.
func (n *Node[T]) Value() T { return n.value }

// Parent returns nil for a root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

func (n *Node[T]) String() string {
	return fmt.Sprintf("Node[%v]", n.value)
}

// AddChildren appends a new leaf for each value.
func (n *Node[T]) AddChildren(values ...T) *Node[T] {
	for _, v := range values {
		child := NewNode(v)
		child.parent = n
		n.explicit.Add(child)
	}
	return n
}

// AddChildNodes appends detached nodes, along with their subtrees. It
// panics with ErrAttached if one of them already has a parent.
func (n *Node[T]) AddChildNodes(children ...*Node[T]) *Node[T] {
	for _, child := range children {
		if child == nil {
			panic(fmt.Errorf("trees: nil child: %w", seqs.ErrInvalidArgument))
		}
		if child.parent != nil {
			panic(fmt.Errorf("trees: attaching %v to %v: %w", child, n, ErrAttached))
		}
	}
	for _, child := range children {
		child.parent = n
		n.explicit.Add(child)
	}
	return n
}

// WithChildrenFunc makes extract the source of this node's children,
// after any explicit ones. The extractor is inherited by every child it
// produces. extract is not called until the children are first needed.
// Children produced by a previous extractor are detached.
func (n *Node[T]) WithChildrenFunc(extract func(T) seqs.Seq[T]) *Node[T] {
	if extract == nil {
		panic(fmt.Errorf("trees: nil child extractor: %w", seqs.ErrInvalidArgument))
	}
	n.detachExtracted()
	produced := lists.NewArrayList[*Node[T]](0)
	values := seqs.Defer(func() seqs.Seq[T] { return extract(n.value) })
	n.extract = extract
	n.extracted = produced
	// The cache runs the constructor once per child, under its pull lock.
	n.derived = seqs.Cache(seqs.Map(values, func(v T) *Node[T] {
		child := NewNode(v)
		child.parent = n
		produced.Add(child)
		return child.WithChildrenFunc(extract)
	}))
	return n
}

// ClearChildren detaches every child, explicit or already extracted, and
// drops the extractor. Children not extracted yet never will be.
func (n *Node[T]) ClearChildren() *Node[T] {
	for child := range n.explicit.Values() {
		child.parent = nil
	}
	n.explicit.Clear()
	n.detachExtracted()
	n.extract = nil
	n.derived = seqs.Seq[*Node[T]]{}
	return n
}

func (n *Node[T]) detachExtracted() {
	if n.extracted == nil {
		return
	}
	for child := range n.extracted.Values() {
		child.parent = nil
	}
	n.extracted.Clear()
	n.extracted = nil
}

// Children returns the explicit children followed by the extracted ones.
// The returned sequence reflects the node as it is when a traversal
// starts.
func (n *Node[T]) Children() seqs.Seq[*Node[T]] {
	return seqs.Defer(func() seqs.Seq[*Node[T]] {
		return seqs.Concat(n.explicit.Seq(), n.derived)
	})
}

// HasExtractor reports whether children are computed by a function.
func (n *Node[T]) HasExtractor() bool { return n.extract != nil }
