package lists

import "reseq/seqs"

// List is an indexed, growable collection that can be traversed as a
// re-entrant sequence.
type List[T any] interface {
	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Get retrieves the element at the specified index
	// Returns an error if index is out of bounds
	Get(index int) (T, error)

	// Set modifies the element at the specified index
	// Returns an error if index is out of bounds
	Set(index int, value T) error

	// Remove removes and returns the element at the specified index
	// Returns an error if index is out of bounds
	Remove(index int) (T, error)

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear clears the list and releases memory
	Clear()

	// IndexFunc returns the index of the first element satisfying
	// predicate, or -1
	IndexFunc(predicate func(T) bool) int

	// Seq returns a live view of the list. Each cursor reads the list as
	// it is when the cursor advances, so elements appended during a
	// traversal are visited.
	Seq() seqs.Seq[T]
}

var _ List[int] = (*ArrayList[int])(nil)

// FindIndex returns the index of the first element equal to v, or -1.
func FindIndex[T comparable](l List[T], v T) int {
	return l.IndexFunc(func(e T) bool { return e == v })
}
