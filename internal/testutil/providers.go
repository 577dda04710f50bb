package testutil

import (
	"context"

	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/providers"
)

// GoodProvider returns the provided chart with no error.
type GoodProvider struct {
	Chart domain.ShotChart
	Calls int
}

func (p *GoodProvider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	_ = ctx
	_ = req
	p.Calls++
	return p.Chart, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err   error
	Calls int
}

func (p *ErrProvider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	p.Calls++
	return domain.ShotChart{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	return domain.ShotChart{}, providers.ErrProviderUnavailable
}

// FlakyProvider fails the first FailCount calls, then succeeds.
type FlakyProvider struct {
	Chart     domain.ShotChart
	Err       error
	FailCount int
	Calls     int
}

func (p *FlakyProvider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	p.Calls++
	if p.Calls <= p.FailCount {
		return domain.ShotChart{}, p.Err
	}
	return p.Chart, nil
}
