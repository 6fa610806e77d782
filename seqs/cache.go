package seqs

import (
	"sync"
	"sync/atomic"
)

// CacheObserver receives notifications about the work done by a Cache.
// Calls may arrive from several goroutines and must not traverse the
// cache they observe.
type CacheObserver interface {
	// SourcePulled is called for every item pulled from the wrapped sequence.
	SourcePulled()
	// Replayed is called for every item served from the buffer without
	// pulling the source.
	Replayed()
	// Drained is called once when the wrapped sequence is exhausted.
	Drained(total int)
}

type CacheOption func(*cacheConfig)

type cacheConfig struct {
	observer CacheObserver
}

// WithCacheObserver reports the activity of the cache to o.
func WithCacheObserver(o CacheObserver) CacheOption {
	return func(cfg *cacheConfig) {
		cfg.observer = o
	}
}

type nopObserver struct{}

func (nopObserver) SourcePulled() {}
func (nopObserver) Replayed()     {}
func (nopObserver) Drained(int)   {}

// cacheSnapshot is the published state of a buffer. A new snapshot is
// stored after every append, older ones stay valid for their length.
type cacheSnapshot[T any] struct {
	items []T
	err   error // raised by the source after the last item, if any
	done  bool
}

type cacheBuffer[T any] struct {
	src      Seq[T]
	observer CacheObserver
	state    atomic.Pointer[cacheSnapshot[T]]

	// pullMu serializes pulls from the source. Reads below the published
	// length never take it.
	pullMu sync.Mutex
	source Cursor[T] // Created on first need, never recreated.
	items  []T       // Append-only, the published snapshot aliases it.
}

// Cache memoizes the first traversal of s. Every cursor of the returned
// sequence observes the same items, and s itself is traversed at most
// once no matter how many cursors exist or how they interleave.
//
// Items already buffered are replayed by index without locking. A cursor
// that runs past the buffer pulls the next item from the single source
// cursor under a lock, appends it and publishes the longer buffer. A
// source error is recorded at its position and returned to every cursor
// that reaches it.
func Cache[T any](s Seq[T], opts ...CacheOption) Seq[T] {
	cfg := cacheConfig{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.observer == nil {
		panic(invalidArgument("Cache", "observer"))
	}
	buf := &cacheBuffer[T]{src: s, observer: cfg.observer}
	buf.state.Store(&cacheSnapshot[T]{})
	return New(func() Cursor[T] {
		return &cacheCursor[T]{buf: buf}
	})
}

// reachable reports whether a cursor at idx has something to return in
// snap: an item, or the recorded error just past the last item. decided
// is false when only a source pull can tell.
func (snap *cacheSnapshot[T]) reachable(idx int) (ok, decided bool) {
	switch {
	case idx < len(snap.items):
		return true, true
	case snap.done:
		return idx == len(snap.items) && snap.err != nil, true
	default:
		return false, false
	}
}

// fill makes sure position idx is buffered, if the source can provide
// it. pulled reports whether the item at idx was pulled by this call.
func (b *cacheBuffer[T]) fill(idx int) (available, pulled bool) {
	if ok, decided := b.state.Load().reachable(idx); decided {
		return ok, false
	}

	b.pullMu.Lock()
	defer b.pullMu.Unlock()
	// Another cursor may have pulled while we waited.
	if ok, decided := b.state.Load().reachable(idx); decided {
		return ok, false
	}
	if b.source == nil {
		b.source = b.src.Cursor()
	}
	v, ok, err := Pull(b.source)
	if ok {
		b.items = append(b.items, v)
		b.state.Store(&cacheSnapshot[T]{items: b.items})
		b.observer.SourcePulled()
		return idx < len(b.items), true
	}
	b.source = nil
	b.state.Store(&cacheSnapshot[T]{items: b.items, err: err, done: true})
	b.observer.Drained(len(b.items))
	return idx == len(b.items) && err != nil, false
}

// at reads position idx. It returns the recorded source error when idx
// is just past the last item.
func (b *cacheBuffer[T]) at(idx int) (T, error) {
	var zero T
	snap := b.state.Load()
	switch {
	case idx < len(snap.items):
		return snap.items[idx], nil
	case snap.done && idx == len(snap.items) && snap.err != nil:
		return zero, snap.err
	default:
		return zero, ErrConcurrentCacheFault
	}
}

type cacheCursor[T any] struct {
	buf    *cacheBuffer[T]
	idx    int
	ready  bool // idx is known to be available
	pulled bool // the item at idx was pulled by this cursor
	done   bool
}

func (c *cacheCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if c.ready {
		return true
	}
	c.ready, c.pulled = c.buf.fill(c.idx)
	if !c.ready {
		c.done = true
	}
	return c.ready
}

func (c *cacheCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	v, err := c.buf.at(c.idx)
	if err == nil && !c.pulled {
		c.buf.observer.Replayed()
	}
	c.ready, c.pulled = false, false
	if err != nil {
		c.done = true
		return v, err
	}
	c.idx++
	return v, nil
}
