package cache

import "github.com/prometheus/client_golang/prometheus"

const (
	resultHit     = "hit"
	resultMiss    = "miss"
	resultExpired = "expired"
)

var lookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "How many cache lookups were made, partitioned by cache and result.",
	},
	[]string{"cache", "result"},
)

// Collectors contains the Prometheus collectors of this package. They
// need to be registered by the caller.
var Collectors = []prometheus.Collector{
	lookups,
}
