package module

// CacheMetrics tracks the performance of storage-level read caches.
type CacheMetrics interface {
	// CacheEntries reports the total number of cached items.
	CacheEntries(resource string, entries uint)
	// CacheHit reports the number of times a queried item was found in the
	// cache.
	CacheHit(resource string)
	// CacheNotFound records the number of times a queried item was found in
	// neither the cache nor the database.
	CacheNotFound(resource string)
	// CacheMiss reports the number of times a queried item was not found in
	// the cache, but was found in the database.
	CacheMiss(resource string)
}

// RegistryMetrics tracks the live protocol registry.
type RegistryMetrics interface {
	// RegistryEntries reports the current number of live index entries.
	RegistryEntries(entries uint)
	// ProtocolRegistered counts accepted protocol registrations.
	ProtocolRegistered()
	// ProtocolRemoved counts protocol registrations rolled back during chain
	// reorganizations.
	ProtocolRemoved()
}
