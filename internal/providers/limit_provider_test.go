package providers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/providers"
	"nba-shotviz-service/internal/testutil"
)

func TestRateLimitedProviderPassesThrough(t *testing.T) {
	inner := &countingProvider{chart: testutil.SampleChart()}
	logger, _ := testutil.NewBufferLogger()

	p := providers.NewRateLimitedProvider(inner, time.Millisecond, logger)
	defer p.(interface{ Close() }).Close()

	chart, err := p.FetchShotChart(context.Background(), domain.ChartRequest{})
	if err != nil {
		t.Fatalf("FetchShotChart: %v", err)
	}
	if len(chart.Shots) == 0 {
		t.Fatal("empty chart")
	}
}

func TestRateLimitedProviderHonorsContext(t *testing.T) {
	inner := &countingProvider{chart: testutil.SampleChart()}
	logger, _ := testutil.NewBufferLogger()

	p := providers.NewRateLimitedProvider(inner, time.Hour, logger)
	defer p.(interface{ Close() }).Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.FetchShotChart(ctx, domain.ChartRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if inner.calls != 0 {
		t.Fatalf("inner called %d times while throttled", inner.calls)
	}
}

func TestRateLimitedProviderNilInner(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	p := providers.NewRateLimitedProvider(nil, time.Millisecond, logger)
	defer p.(interface{ Close() }).Close()

	if _, err := p.FetchShotChart(context.Background(), domain.ChartRequest{}); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want providers.ErrProviderUnavailable", err)
	}
}
