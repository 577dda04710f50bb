package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	AdminToken string
	StatsAPI   StatsAPIConfig
	Cache      CacheConfig
	Chart      ChartConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		AdminToken: envOrDefault(envAdminToken, ""),
		StatsAPI:   loadStatsAPI(),
		Cache:      loadCache(),
		Chart:      loadChart(),
		Metrics:    loadMetrics(),
	}
}
