package server

import (
	"log/slog"
	"time"

	"nba-shotviz-service/internal/config"
	"nba-shotviz-service/internal/metrics"
	"nba-shotviz-service/internal/providers"
)

// providerFactory assembles the provider chain: base client wrapped with
// rate limiting, retries, and caching.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the assembled provider plus a close func for any wrapper
// holding resources (the rate limiter's ticker).
func (f providerFactory) build(cfg config.Config, cache providers.ShotChartCache) (providers.ShotChartProvider, func()) {
	base := selectProvider(cfg, f.logger)

	provider := base
	closeFn := func() {}
	if cfg.Provider == "statsapi" {
		// The upstream endpoint bans bursty clients; space calls out.
		provider = providers.NewRateLimitedProvider(provider, time.Duration(cfg.StatsAPI.MinInterval), f.logger)
		if closer, ok := provider.(interface{ Close() }); ok {
			closeFn = closer.Close
		}
	}
	provider = providers.NewRetryingProvider(provider, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.StatsAPI.MaxRetries, 0)
	return providers.NewCachingProvider(provider, cache, f.logger, f.metrics), closeFn
}
