package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"reseq/seqs"
)

// Registry holds the metric vectors shared by all instrumented sequences.
type Registry struct {
	CacheSourcePulls *prometheus.CounterVec
	CacheReplayed    *prometheus.CounterVec
	CacheDrains      *prometheus.CounterVec
	CacheBuffered    *prometheus.GaugeVec

	Traversals *prometheus.CounterVec
	Items      *prometheus.CounterVec
}

// NewRegistry creates and registers the metric vectors. It panics if they
// are already registered with cfg.Registry, like promauto.
func NewRegistry(cfg Config) *Registry {
	cfg = cfg.withDefaults()
	factory := promauto.With(cfg.Registry)
	labels := []string{"name"}

	counter := func(subsystem, name, help string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: cfg.Labels,
		}, labels)
	}

	return &Registry{
		CacheSourcePulls: counter("cache", "source_pulls_total",
			"Total number of items pulled from the sequence wrapped by a cache"),
		CacheReplayed: counter("cache", "replayed_items_total",
			"Total number of items served from a cache buffer"),
		CacheDrains: counter("cache", "drains_total",
			"Total number of caches whose source reached its end"),
		CacheBuffered: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "cache",
			Name:        "buffered_items",
			Help:        "Number of items held by a drained cache",
			ConstLabels: cfg.Labels,
		}, labels),
		Traversals: counter("seq", "traversals_total",
			"Total number of cursors created on an instrumented sequence"),
		Items: counter("seq", "items_total",
			"Total number of items produced by an instrumented sequence"),
	}
}

// CacheObserver returns an observer reporting under the given name.
func (r *Registry) CacheObserver(name string) seqs.CacheObserver {
	return &cacheObserver{
		pulls:    r.CacheSourcePulls.WithLabelValues(name),
		replayed: r.CacheReplayed.WithLabelValues(name),
		drains:   r.CacheDrains.WithLabelValues(name),
		buffered: r.CacheBuffered.WithLabelValues(name),
	}
}

type cacheObserver struct {
	pulls, replayed, drains prometheus.Counter
	buffered                prometheus.Gauge
}

func (o *cacheObserver) SourcePulled() { o.pulls.Inc() }
func (o *cacheObserver) Replayed()     { o.replayed.Inc() }

func (o *cacheObserver) Drained(total int) {
	o.drains.Inc()
	o.buffered.Set(float64(total))
}

// Instrument counts the traversals of s and the items they produce.
func Instrument[T any](r *Registry, name string, s seqs.Seq[T]) seqs.Seq[T] {
	traversals := r.Traversals.WithLabelValues(name)
	items := r.Items.WithLabelValues(name)
	return seqs.New(func() seqs.Cursor[T] {
		traversals.Inc()
		return &countingCursor[T]{Cursor: s.Cursor(), items: items}
	})
}

type countingCursor[T any] struct {
	seqs.Cursor[T]
	items prometheus.Counter
}

func (c *countingCursor[T]) Next() (T, error) {
	v, err := c.Cursor.Next()
	if err == nil {
		c.items.Inc()
	}
	return v, err
}
