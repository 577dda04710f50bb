package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a ShotChartProvider with retry/backoff behavior and
// records every attempt with the metrics recorder.
type retryingProvider struct {
	inner       ShotChartProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner ShotChartProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) ShotChartProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		chart, err := r.inner.FetchShotChart(ctx, req)
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return chart, nil
		}
		lastErr = err

		if rl, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.name, rl.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return domain.ShotChart{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return domain.ShotChart{}, lastErr
}
