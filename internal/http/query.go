package http

import (
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"nba-shotviz-service/internal/app/shotcharts"
	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/filters"
)

// parseChartQuery translates the shot-chart query string into a build
// request, starting from the configured defaults.
func parseChartQuery(r *nethttp.Request, defaults shotcharts.RenderOptions) (shotcharts.BuildRequest, error) {
	q := r.URL.Query()

	playerID, err := strconv.Atoi(q.Get("player_id"))
	if err != nil || playerID <= 0 {
		return shotcharts.BuildRequest{}, fmt.Errorf("player_id must be a positive integer")
	}

	seasons := splitList(q.Get("seasons"))
	if len(seasons) == 0 {
		return shotcharts.BuildRequest{}, fmt.Errorf("seasons is required")
	}

	opts := defaults
	opts.OverlayHeatmap = boolParam(q, "heatmap", false)
	opts.ForceMakeMissColors = boolParam(q, "make_miss_colors", false)
	opts.Halo = boolParam(q, "halo", defaults.Halo)

	if opts.BinFt, err = floatParam(q, "bin_ft", defaults.BinFt); err != nil {
		return shotcharts.BuildRequest{}, err
	}
	if opts.VLim, err = floatParam(q, "vlim", defaults.VLim); err != nil {
		return shotcharts.BuildRequest{}, err
	}
	if opts.SampleCap, err = intParam(q, "sample", defaults.SampleCap); err != nil {
		return shotcharts.BuildRequest{}, err
	}
	if opts.ArcSamples, err = intParam(q, "arc_samples", defaults.ArcSamples); err != nil {
		return shotcharts.BuildRequest{}, err
	}
	if opts.ReleaseHeightFt, err = floatParam(q, "release_height", defaults.ReleaseHeightFt); err != nil {
		return shotcharts.BuildRequest{}, err
	}
	if opts.BinFt <= 0 {
		return shotcharts.BuildRequest{}, fmt.Errorf("bin_ft must be positive")
	}
	if opts.VLim <= 0 {
		return shotcharts.BuildRequest{}, fmt.Errorf("vlim must be positive")
	}

	filter, err := parseFilter(q)
	if err != nil {
		return shotcharts.BuildRequest{}, err
	}
	opts.Filter = filter

	return shotcharts.BuildRequest{
		PlayerID:   playerID,
		Seasons:    seasons,
		SeasonType: q.Get("season_type"),
		Options:    opts,
	}, nil
}

func parseFilter(q url.Values) (filters.Filter, error) {
	f := filters.Filter{
		Result:   filters.ParseResult(q.Get("result")),
		Opponent: strings.TrimSpace(q.Get("opponent")),
	}

	switch strings.ToLower(strings.TrimSpace(q.Get("venue"))) {
	case "":
	case "home":
		f.Venue = domain.VenueHome
	case "away":
		f.Venue = domain.VenueAway
	default:
		return filters.Filter{}, fmt.Errorf("venue must be home or away")
	}

	for _, raw := range splitList(q.Get("period")) {
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 {
			return filters.Filter{}, fmt.Errorf("period must be a list of positive integers")
		}
		f.Periods = append(f.Periods, p)
	}

	var err error
	if f.MinDistanceFt, err = floatParam(q, "min_dist", 0); err != nil {
		return filters.Filter{}, err
	}
	if f.MaxDistanceFt, err = floatParam(q, "max_dist", 0); err != nil {
		return filters.Filter{}, err
	}
	if f.MaxDistanceFt > 0 && f.MinDistanceFt > f.MaxDistanceFt {
		return filters.Filter{}, fmt.Errorf("min_dist exceeds max_dist")
	}
	return f, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func boolParam(q url.Values, name string, fallback bool) bool {
	raw := strings.ToLower(strings.TrimSpace(q.Get(name)))
	if raw == "" {
		return fallback
	}
	return raw == "1" || raw == "true" || raw == "yes"
}

func intParam(q url.Values, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return v, nil
}

func floatParam(q url.Values, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative number", name)
	}
	return v, nil
}
