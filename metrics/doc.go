// Package metrics provides Prometheus instrumentation for sequences.
//
// Two kinds of instrumentation are offered:
//
//   - A seqs.CacheObserver, passed to seqs.Cache with
//     seqs.WithCacheObserver, counts source pulls, replayed items and
//     drains of a cache.
//   - Instrument wraps any sequence and counts traversals started and
//     items produced.
//
// Use a dedicated registry to keep instances apart:
//
//	reg := metrics.NewRegistry(metrics.Config{Registry: prometheus.NewRegistry()})
//	cached := seqs.Cache(src, seqs.WithCacheObserver(reg.CacheObserver("users")))
//
// # Available Metrics
//
//   - reseq_cache_source_pulls_total: items pulled from the wrapped sequence
//   - reseq_cache_replayed_items_total: items served from the buffer
//   - reseq_cache_drains_total: caches whose source reached its end
//   - reseq_cache_buffered_items: items held once the source is drained
//   - reseq_seq_traversals_total: cursors created on an instrumented sequence
//   - reseq_seq_items_total: items produced by an instrumented sequence
//
// Every metric carries a "name" label holding the user-provided name.
package metrics
