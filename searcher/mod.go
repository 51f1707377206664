package searcher

import "decisiontree/experiments/metrics"

type Option func(c *config)

type config struct {
	metrics metrics.Collector
}

// WithMetrics records every operation applied to the tree in collector. A
// collector may be shared between trees.
func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
