// Package cache provides substitution caching implementations.
//
// The expander caches fully substituted content keyed by content hash and
// locale, so identical documents skip re-scanning within a run and, via
// export/import or the Redis backend, across build runs.
package cache

// SubstitutionCache is the interface for substitution caching.
type SubstitutionCache interface {
	// Get retrieves cached content. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores substituted content in the cache.
	Set(key string, value string) error
}
