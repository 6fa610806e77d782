package metrics

import "github.com/prometheus/client_golang/prometheus"

// Config holds configuration for metrics collection.
type Config struct {
	// Registry receives the collectors. If nil, prometheus.DefaultRegisterer is used.
	Registry prometheus.Registerer

	// Namespace overrides the default "reseq" namespace.
	Namespace string

	// Labels are constant labels added to every metric.
	Labels prometheus.Labels
}

// DefaultConfig returns a configuration registering with the default
// Prometheus registerer.
func DefaultConfig() Config {
	return Config{
		Registry:  prometheus.DefaultRegisterer,
		Namespace: "reseq",
	}
}

func (c Config) withDefaults() Config {
	if c.Registry == nil {
		c.Registry = prometheus.DefaultRegisterer
	}
	if c.Namespace == "" {
		c.Namespace = "reseq"
	}
	return c
}
