package providers

import (
	"context"
	"log/slog"

	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/metrics"
)

// cachingProvider memoizes upstream fetches keyed by request parameters.
// Cache failures degrade to an upstream fetch rather than failing the call.
type cachingProvider struct {
	next     ShotChartProvider
	cache    ShotChartCache
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewCachingProvider wraps the given provider with a shot-chart cache.
func NewCachingProvider(next ShotChartProvider, cache ShotChartCache, logger *slog.Logger, recorder *metrics.Recorder) ShotChartProvider {
	if cache == nil {
		return next
	}
	return &cachingProvider{
		next:     next,
		cache:    cache,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *cachingProvider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	key := req.Key()

	chart, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "cache", "cache read failed", "err", err)
	}
	p.recorder.RecordCacheLookup(ok)
	if ok {
		return chart, nil
	}

	chart, err = p.next.FetchShotChart(ctx, req)
	if err != nil {
		return domain.ShotChart{}, err
	}

	if setErr := p.cache.Set(ctx, key, chart); setErr != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "cache", "cache write failed", "err", setErr)
	}
	return chart, nil
}
