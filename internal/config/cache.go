package config // response-cache settings for the fleet read endpoints

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// CacheConfig controls the Redis response cache that fronts the
// read-heavy fleet endpoints (vehicle listings change rarely compared
// to how often the dashboard polls them).  Caching is skipped entirely
// when Enabled is false or no Redis client could be built.
//
// Fields:
//  Enabled      – master switch for the middleware.
//  Methods      – HTTP methods eligible for caching, normally just GET.
//  TTL          – lifetime of a cached response.
//  KeyStrategy  – which request parts feed the cache key (see cacheKey).
//  Prefix       – Redis key namespace, shared by all cache entries.
//  MaxBodyBytes – responses larger than this are served but not stored.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from environment variables,
// falling back to defaults tuned for the vehicle list endpoint.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		KeyStrategy:  getenv("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       getenv("CACHE_PREFIX", "drivehub:cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

// parseMethods splits a comma-separated method list and upper-cases
// each entry, so "get, head" and "GET,HEAD" configure the same set.
func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}

// getenv returns the environment value for key, or def when unset or
// empty.  Shared by the cache, rate-limit and store-driver settings.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

// parseDur parses a Go duration string, falling back to one second on
// malformed input rather than failing startup over a tuning knob.
func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
