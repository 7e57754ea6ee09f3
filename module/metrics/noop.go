package metrics

// NoopCollector satisfies all metrics interfaces while doing nothing. It is
// used by tests and by tools that do not report metrics.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) CacheEntries(resource string, entries uint) {}
func (nc *NoopCollector) CacheHit(resource string)                   {}
func (nc *NoopCollector) CacheNotFound(resource string)              {}
func (nc *NoopCollector) CacheMiss(resource string)                  {}
func (nc *NoopCollector) RegistryEntries(entries uint)               {}
func (nc *NoopCollector) ProtocolRegistered()                        {}
func (nc *NoopCollector) ProtocolRemoved()                           {}
