package repository

import "time"

// CacheRepository backs the price recommendation cache. A zero TTL means
// the entry does not expire.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
