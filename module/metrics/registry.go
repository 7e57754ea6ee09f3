package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespaceRegistry = "protoregistry"

const (
	subsystemCache    = "cache"
	subsystemRegistry = "registry"
)

// resource names for cache metrics
const (
	ResourceProtocolEntry = "protocol_entry"
)

// RegistryCollector reports registry and storage cache metrics to
// prometheus. One collector instance serves all caches, distinguished by
// their resource label.
type RegistryCollector struct {
	cacheEntries    *prometheus.GaugeVec
	cacheHits       *prometheus.CounterVec
	cacheNotFound   *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	registryEntries prometheus.Gauge
	registered      prometheus.Counter
	removed         prometheus.Counter
}

func NewRegistryCollector() *RegistryCollector {

	rc := &RegistryCollector{

		cacheEntries: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespaceRegistry,
			Subsystem: subsystemCache,
			Name:      "entries_total",
			Help:      "the number of items in the cache",
		}, []string{"resource"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceRegistry,
			Subsystem: subsystemCache,
			Name:      "hits_total",
			Help:      "the number of hits for the cache",
		}, []string{"resource"}),

		cacheNotFound: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceRegistry,
			Subsystem: subsystemCache,
			Name:      "not_found_total",
			Help:      "the number of cache queries with no underlying entry",
		}, []string{"resource"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceRegistry,
			Subsystem: subsystemCache,
			Name:      "misses_total",
			Help:      "the number of times the queried item was only found in the database",
		}, []string{"resource"}),

		registryEntries: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceRegistry,
			Subsystem: subsystemRegistry,
			Name:      "entries_total",
			Help:      "the number of live protocol index entries",
		}),

		registered: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRegistry,
			Subsystem: subsystemRegistry,
			Name:      "registered_total",
			Help:      "the number of accepted protocol registrations",
		}),

		removed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRegistry,
			Subsystem: subsystemRegistry,
			Name:      "removed_total",
			Help:      "the number of registrations rolled back on reorganization",
		}),
	}

	return rc
}

func (rc *RegistryCollector) CacheEntries(resource string, entries uint) {
	rc.cacheEntries.With(prometheus.Labels{"resource": resource}).Set(float64(entries))
}

func (rc *RegistryCollector) CacheHit(resource string) {
	rc.cacheHits.With(prometheus.Labels{"resource": resource}).Inc()
}

func (rc *RegistryCollector) CacheNotFound(resource string) {
	rc.cacheNotFound.With(prometheus.Labels{"resource": resource}).Inc()
}

func (rc *RegistryCollector) CacheMiss(resource string) {
	rc.cacheMisses.With(prometheus.Labels{"resource": resource}).Inc()
}

func (rc *RegistryCollector) RegistryEntries(entries uint) {
	rc.registryEntries.Set(float64(entries))
}

func (rc *RegistryCollector) ProtocolRegistered() {
	rc.registered.Inc()
}

func (rc *RegistryCollector) ProtocolRemoved() {
	rc.removed.Inc()
}
