package seqs

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is returned by Cursor.Next when the cursor has no more items.
	ErrExhausted = errors.New("cursor exhausted")

	// ErrInvalidArgument is raised at construction time when a required
	// function argument is nil.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConcurrentCacheFault signals that a cache cursor observed a
	// position outside of the shared buffer.
	ErrConcurrentCacheFault = errors.New("cache buffer invariant violated")
)

func invalidArgument(op, what string) error {
	return fmt.Errorf("seqs.%s: nil %s: %w", op, what, ErrInvalidArgument)
}

// checkPredicates panics if any predicate is nil. When required is true an
// empty predicate list is rejected as well.
func checkPredicates[T any](op string, preds []func(T) bool, required bool) {
	if required && len(preds) == 0 {
		panic(fmt.Errorf("seqs.%s: no predicate given: %w", op, ErrInvalidArgument))
	}
	for _, p := range preds {
		if p == nil {
			panic(invalidArgument(op, "predicate"))
		}
	}
}

// anyOf combines predicates with OR semantics. An empty set matches everything.
func anyOf[T any](preds []func(T) bool) func(T) bool {
	switch len(preds) {
	case 0:
		return func(T) bool { return true }
	case 1:
		return preds[0]
	}
	preds = append([]func(T) bool(nil), preds...)
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}
