// Package metrics exposes Prometheus counters for the lookup pipeline.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LookupCacheHits counts lookups served from the in-process cache.
	LookupCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingo_lookup_cache_hits_total",
		Help: "Inflection lookups served from the in-process cache.",
	})

	// LookupCacheMisses counts lookups that went through the resolver.
	LookupCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingo_lookup_cache_misses_total",
		Help: "Inflection lookups recomputed via the store.",
	})

	// LookupNotFound counts lookups that matched neither a lemma nor a form.
	LookupNotFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingo_lookup_not_found_total",
		Help: "Inflection lookups that resolved to nothing.",
	})

	// IngestedForms counts word-form rows written by the ingest tool.
	IngestedForms = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingo_ingested_forms_total",
		Help: "Word-form rows submitted to the store by bulk ingestion.",
	})
)

// Handler returns the /metrics endpoint handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
