package config

import "time"

// StatsAPIConfig controls the upstream shot-chart client.
type StatsAPIConfig struct {
	BaseURL     string
	Timeout     Duration
	UserAgent   string
	MinInterval Duration
	MaxRetries  int
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:   envOrDefault(envStatsBaseURL, ""),
		Timeout:   durationEnvOrDefault(envStatsTimeout, 15*time.Second),
		UserAgent: envOrDefault(envStatsUserAgent, ""),
		// The stats endpoint throttles aggressively; space calls out.
		MinInterval: durationEnvOrDefault(envStatsMinInterval, 2*time.Second),
		MaxRetries:  intEnvOrDefault(envStatsRetries, 3),
	}
}
