package trees

import (
	"fmt"

	"reseq/lists"
	"reseq/queues"
	"reseq/seqs"
)

// BreadthFirst visits root, then its children, then their children, level
// by level. A node's children are fetched only when the traversal moves
// past that node.
func BreadthFirst[T comparable](root *Node[T]) seqs.Seq[*Node[T]] {
	return BreadthFirstNotBelow(root)
}

// DepthFirst visits nodes in pre-order: a node, then each child subtree
// from first to last.
func DepthFirst[T comparable](root *Node[T]) seqs.Seq[*Node[T]] {
	return DepthFirstNotBelow(root)
}

// BreadthFirstNotBelow is BreadthFirst, except that a node matching any of
// the predicates is still visited but its children are never fetched.
func BreadthFirstNotBelow[T comparable](root *Node[T], preds ...func(*Node[T]) bool) seqs.Seq[*Node[T]] {
	prune := pruner("BreadthFirstNotBelow", preds)
	if root == nil {
		return seqs.Empty[*Node[T]]()
	}
	return seqs.FromStep(func() seqs.StepFunc[*Node[T]] {
		frontier := queues.NewArrayQueue[*Node[T]](0)
		frontier.Enqueue(root)
		var last *Node[T] // visited, children not yet enqueued
		return func() (*Node[T], bool, error) {
			if last != nil {
				n := last
				last = nil
				if !prune(n) {
					if err := eachChild(n, frontier.Enqueue); err != nil {
						return nil, false, err
					}
				}
			}
			n, ok := frontier.Dequeue()
			if !ok {
				return nil, false, nil
			}
			last = n
			return n, true, nil
		}
	})
}

// DepthFirstNotBelow is DepthFirst, except that a node matching any of the
// predicates is still visited but its children are never fetched.
func DepthFirstNotBelow[T comparable](root *Node[T], preds ...func(*Node[T]) bool) seqs.Seq[*Node[T]] {
	prune := pruner("DepthFirstNotBelow", preds)
	if root == nil {
		return seqs.Empty[*Node[T]]()
	}
	return seqs.FromStep(func() seqs.StepFunc[*Node[T]] {
		stack := lists.NewArrayList[*Node[T]](8)
		stack.Push(root)
		var last *Node[T]
		var children []*Node[T]
		return func() (*Node[T], bool, error) {
			if last != nil {
				n := last
				last = nil
				if !prune(n) {
					children = children[:0]
					if err := eachChild(n, func(c *Node[T]) { children = append(children, c) }); err != nil {
						return nil, false, err
					}
					// Push in reverse so the first child is on top.
					for i := len(children) - 1; i >= 0; i-- {
						stack.Push(children[i])
					}
					clear(children)
				}
			}
			n, ok := stack.Pop()
			if !ok {
				return nil, false, nil
			}
			last = n
			return n, true, nil
		}
	})
}

func eachChild[T comparable](n *Node[T], fn func(*Node[T])) error {
	c := n.Children().Cursor()
	for {
		child, ok, err := seqs.Pull(c)
		if err != nil {
			return fmt.Errorf("expanding %v: %w", n, err)
		}
		if !ok {
			return nil
		}
		fn(child)
	}
}

func pruner[T comparable](op string, preds []func(*Node[T]) bool) func(*Node[T]) bool {
	for _, p := range preds {
		if p == nil {
			panic(fmt.Errorf("trees.%s: nil predicate: %w", op, seqs.ErrInvalidArgument))
		}
	}
	preds = append([]func(*Node[T]) bool(nil), preds...)
	return func(n *Node[T]) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}
		return false
	}
}

// Values maps a sequence of nodes to their values.
func Values[T comparable](nodes seqs.Seq[*Node[T]]) seqs.Seq[T] {
	return seqs.Map(nodes, (*Node[T]).Value)
}

// Descendants visits every node below n in pre-order, excluding n.
func Descendants[T comparable](n *Node[T]) seqs.Seq[*Node[T]] {
	return seqs.Skip(DepthFirst(n), 1)
}

// Find returns the first node, in breadth-first order, holding value.
func Find[T comparable](root *Node[T], value T) (*Node[T], bool, error) {
	return seqs.First(seqs.Where(BreadthFirst(root), hasValue(value)))
}

func hasValue[T comparable](value T) func(*Node[T]) bool {
	return func(n *Node[T]) bool { return n.value == value }
}
