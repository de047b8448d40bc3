package config

import (
	"strings"
	"time"
)

// CacheConfig controls the Redis response cache middleware. When
// Enabled is false or no Redis client is available, caching is skipped.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from the environment with
// sensible defaults (GET only, 30s TTL, 1MiB body cap).
func LoadCacheConfig() CacheConfig {
	methods := map[string]bool{}
	for _, m := range strings.Split(getenv("CACHE_METHODS", "GET"), ",") {
		if m = strings.TrimSpace(strings.ToUpper(m)); m != "" {
			methods[m] = true
		}
	}
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      methods,
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
