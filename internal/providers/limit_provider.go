package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-shotviz-service/internal/domain"
)

// rateLimitedProvider wraps a ShotChartProvider and enforces a minimum
// interval between upstream calls.
type rateLimitedProvider struct {
	next     ShotChartProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a provider that limits calls to the given
// interval. Calls block until the interval elapses to avoid exceeding
// upstream quotas.
func NewRateLimitedProvider(next ShotChartProvider, interval time.Duration, logger *slog.Logger) ShotChartProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	if p == nil || p.next == nil {
		return domain.ShotChart{}, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return domain.ShotChart{}, ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "rate-limited provider fetch",
		slog.String("season", req.Season))
	return p.next.FetchShotChart(ctx, req)
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
