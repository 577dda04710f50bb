package config

// CacheConfig controls shot-chart memoization. A non-empty RedisAddr moves
// the cache to redis; otherwise an in-process store is used.
type CacheConfig struct {
	TTL       Duration
	RedisAddr string
	RedisDB   int
}

func loadCache() CacheConfig {
	return CacheConfig{
		TTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		RedisAddr: envOrDefault(envRedisAddr, ""),
		RedisDB:   intEnvOrDefault(envRedisDB, 0),
	}
}
