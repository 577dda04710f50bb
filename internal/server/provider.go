package server

import (
	"log/slog"
	"net/http"
	"time"

	"nba-shotviz-service/internal/config"
	"nba-shotviz-service/internal/providers"
	"nba-shotviz-service/internal/providers/fixture"
	"nba-shotviz-service/internal/providers/statsapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ShotChartProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "statsapi":
		return statsapi.NewClient(statsapi.Config{
			BaseURL:    cfg.StatsAPI.BaseURL,
			UserAgent:  cfg.StatsAPI.UserAgent,
			HTTPClient: &http.Client{Timeout: time.Duration(cfg.StatsAPI.Timeout)},
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
