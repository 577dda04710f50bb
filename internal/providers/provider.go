package providers

import (
	"context"

	"nba-shotviz-service/internal/domain"
)

// ShotChartProvider defines how upstream shot-chart data is fetched and
// normalized. Implementations return the player's shot log together with the
// league baseline for the requested season.
type ShotChartProvider interface {
	FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error)
}

// ShotChartCache stores fetched shot charts keyed by request parameters.
type ShotChartCache interface {
	Get(ctx context.Context, key string) (domain.ShotChart, bool, error)
	Set(ctx context.Context, key string, chart domain.ShotChart) error
	Invalidate(ctx context.Context, key string) error
	InvalidateAll(ctx context.Context) error
}
