package metrics_test

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"reseq/metrics"
	"reseq/seqs"
)

func newRegistry() *metrics.Registry {
	return metrics.NewRegistry(metrics.Config{Registry: prometheus.NewRegistry()})
}

func TestCacheObserver(t *testing.T) {
	r := require.New(t)
	reg := newRegistry()

	cached := seqs.Cache(seqs.Range(0, 5, 1),
		seqs.WithCacheObserver(reg.CacheObserver("range")))

	for range 3 {
		got, err := seqs.Collect(cached)
		r.NoError(err)
		r.Equal([]int{0, 1, 2, 3, 4}, got)
	}

	r.Equal(5.0, testutil.ToFloat64(reg.CacheSourcePulls.WithLabelValues("range")))
	r.Equal(10.0, testutil.ToFloat64(reg.CacheReplayed.WithLabelValues("range")))
	r.Equal(1.0, testutil.ToFloat64(reg.CacheDrains.WithLabelValues("range")))
	r.Equal(5.0, testutil.ToFloat64(reg.CacheBuffered.WithLabelValues("range")))
}

func TestCacheObserverConcurrent(t *testing.T) {
	r := require.New(t)
	reg := newRegistry()

	cached := seqs.Cache(seqs.Range(0, 100, 1),
		seqs.WithCacheObserver(reg.CacheObserver("shared")))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = seqs.Collect(cached)
		}()
	}
	wg.Wait()

	r.Equal(100.0, testutil.ToFloat64(reg.CacheSourcePulls.WithLabelValues("shared")))
	r.Equal(700.0, testutil.ToFloat64(reg.CacheReplayed.WithLabelValues("shared")))
	r.Equal(1.0, testutil.ToFloat64(reg.CacheDrains.WithLabelValues("shared")))
}

func TestInstrument(t *testing.T) {
	r := require.New(t)
	reg := newRegistry()

	s := metrics.Instrument(reg, "letters", seqs.Of("a", "b", "c"))

	_, err := seqs.Collect(s)
	r.NoError(err)
	first, ok, err := seqs.First(s)
	r.NoError(err)
	r.True(ok)
	r.Equal("a", first)

	r.Equal(2.0, testutil.ToFloat64(reg.Traversals.WithLabelValues("letters")))
	r.Equal(4.0, testutil.ToFloat64(reg.Items.WithLabelValues("letters")))
}

func TestNamespaceAndLabels(t *testing.T) {
	r := require.New(t)
	promReg := prometheus.NewRegistry()
	reg := metrics.NewRegistry(metrics.Config{
		Registry:  promReg,
		Namespace: "custom",
		Labels:    prometheus.Labels{"service": "test"},
	})

	_, err := seqs.Collect(seqs.Cache(seqs.Of(1), seqs.WithCacheObserver(reg.CacheObserver("one"))))
	r.NoError(err)

	families, err := promReg.Gather()
	r.NoError(err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	r.Contains(names, "custom_cache_source_pulls_total")
	r.Contains(names, "custom_cache_drains_total")
}

func TestDefaultConfig(t *testing.T) {
	r := require.New(t)
	cfg := metrics.DefaultConfig()
	r.Equal("reseq", cfg.Namespace)
	r.Equal(prometheus.DefaultRegisterer, cfg.Registry)
}
