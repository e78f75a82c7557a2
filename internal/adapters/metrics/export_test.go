package metrics

import "github.com/prometheus/client_golang/prometheus"

func (r *Recorder) SolvesCounter(strategy, outcome string) prometheus.Counter {
	return r.solves.WithLabelValues(strategy, outcome)
}

func (r *Recorder) CacheHitsCounter() prometheus.Counter   { return r.cacheHits }
func (r *Recorder) CacheMissesCounter() prometheus.Counter { return r.cacheMisses }
func (r *Recorder) FallbacksCounter() prometheus.Counter   { return r.fallbacks }
func (r *Recorder) MismatchesCounter() prometheus.Counter  { return r.mismatches }
