package shotcharts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nba-shotviz-service/internal/arcs"
	"nba-shotviz-service/internal/config"
	"nba-shotviz-service/internal/court"
	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/domain/charts"
	"nba-shotviz-service/internal/filters"
	"nba-shotviz-service/internal/heatmap"
	"nba-shotviz-service/internal/logging"
	"nba-shotviz-service/internal/metrics"
	"nba-shotviz-service/internal/providers"
	"nba-shotviz-service/internal/zones"
)

// ErrLeagueUnavailable signals that a heatmap was requested but the league
// baseline is missing or empty. An all-zero grid would be indistinguishable
// from "zero difference", so the caller gets an explicit failure instead.
var ErrLeagueUnavailable = errors.New("league averages unavailable")

// UniformArcColor de-emphasizes individual arcs under a heatmap overlay.
const UniformArcColor = "#666666"

// RenderOptions selects and parameterizes the chart layers for one request.
type RenderOptions struct {
	OverlayHeatmap      bool
	BinFt               float64
	VLim                float64
	SampleCap           int
	ReleaseHeightFt     float64
	ArcSamples          int
	ForceMakeMissColors bool
	Halo                bool
	Filter              filters.Filter
	HeatmapApex         charts.ApexProfile
	PlainApex           charts.ApexProfile
}

// BuildRequest identifies the shot data and rendering options for one chart.
type BuildRequest struct {
	PlayerID   int
	Seasons    []string
	SeasonType string
	Options    RenderOptions
}

// Service orchestrates fetch, filter, and chart assembly.
type Service struct {
	provider providers.ShotChartProvider
	synth    *arcs.Synthesizer
	cfg      config.ChartConfig
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service.
func NewService(provider providers.ShotChartProvider, cfg config.ChartConfig, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		synth:    arcs.New(),
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
	}
}

// WithSynthesizer overrides the arc synthesizer; tests use a seeded one.
func (s *Service) WithSynthesizer(synth *arcs.Synthesizer) *Service {
	s.synth = synth
	return s
}

// DefaultOptions returns RenderOptions populated from configuration.
func (s *Service) DefaultOptions() RenderOptions {
	return RenderOptions{
		BinFt:           s.cfg.BinFt,
		VLim:            s.cfg.VLim,
		SampleCap:       s.cfg.SampleCap,
		ReleaseHeightFt: s.cfg.ReleaseHeightFt,
		ArcSamples:      s.cfg.ArcSamples,
		Halo:            s.cfg.Halo,
		HeatmapApex:     s.cfg.HeatmapApex,
		PlainApex:       s.cfg.PlainApex,
	}
}

// LoadShotChart fetches and concatenates shot logs for every requested
// season, tagging each record with its season. A season that yields no data
// contributes nothing rather than failing the whole load.
func (s *Service) LoadShotChart(ctx context.Context, playerID int, seasons []string, seasonType string) (domain.ShotChart, error) {
	var out domain.ShotChart
	for _, season := range seasons {
		chart, err := s.provider.FetchShotChart(ctx, domain.ChartRequest{
			PlayerID:   playerID,
			Season:     season,
			SeasonType: seasonType,
		})
		if err != nil {
			return domain.ShotChart{}, err
		}
		for i := range chart.Shots {
			if chart.Shots[i].Season == "" {
				chart.Shots[i].Season = season
			}
		}
		out.Shots = append(out.Shots, chart.Shots...)
		out.LeagueAverages = append(out.LeagueAverages, chart.LeagueAverages...)
	}
	return out, nil
}

// BuildChart fetches the requested shot data and assembles the full payload:
// court lines, optional diff grid and boundaries, and shot arcs.
func (s *Service) BuildChart(ctx context.Context, req BuildRequest) (charts.ChartPayload, error) {
	start := time.Now()
	payload, err := s.buildChart(ctx, req)
	if s.metrics != nil {
		s.metrics.RecordChartBuild(time.Since(start), payload.RenderedShots, err)
	}
	return payload, err
}

func (s *Service) buildChart(ctx context.Context, req BuildRequest) (charts.ChartPayload, error) {
	chart, err := s.LoadShotChart(ctx, req.PlayerID, req.Seasons, req.SeasonType)
	if err != nil {
		return charts.ChartPayload{}, err
	}
	return s.Assemble(ctx, chart, req.Options)
}

// Assemble builds a payload from already-materialized shot data.
func (s *Service) Assemble(ctx context.Context, chart domain.ShotChart, opts RenderOptions) (charts.ChartPayload, error) {
	shots := filters.Apply(chart.Shots, opts.Filter)

	payload := charts.ChartPayload{
		Court:      court.Lines(),
		TotalShots: len(shots),
	}

	profile := opts.PlainApex
	uniform := ""
	if opts.OverlayHeatmap {
		if len(chart.LeagueAverages) == 0 {
			return charts.ChartPayload{}, ErrLeagueUnavailable
		}
		profile = opts.HeatmapApex
		if !opts.ForceMakeMissColors {
			uniform = UniformArcColor
		}

		playerTable := zones.BuildPlayerZoneTable(shots)
		leagueTable := zones.BuildLeagueZoneTable(chart.LeagueAverages)
		merged := zones.MergeZoneTables(playerTable, leagueTable)

		grid := heatmap.BuildDiffGrid(merged, opts.BinFt, heatmap.GridOptions{Labels: true, Hover: true})
		style := heatmap.DefaultBoundaryStyle()
		style.Halo = opts.Halo
		payload.Grid = grid
		payload.Boundaries = heatmap.TraceBoundaries(grid, style)
		payload.VLim = opts.VLim
	}

	arcsOut, rendered := s.synth.BuildArcs(shots, arcs.Options{
		Profile:         profile,
		ReleaseHeightFt: opts.ReleaseHeightFt,
		Samples:         opts.ArcSamples,
		SampleCap:       opts.SampleCap,
		UniformColor:    uniform,
		Hover:           true,
	})
	payload.Arcs = arcsOut
	payload.RenderedShots = rendered

	logging.Info(logging.FromContext(ctx, s.logger), "chart assembled",
		slog.Int(logging.FieldCount, rendered),
		slog.Bool("heatmap", opts.OverlayHeatmap),
	)
	return payload, nil
}
