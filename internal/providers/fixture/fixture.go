package fixture

import (
	"context"

	"nba-shotviz-service/internal/domain"
	domainzones "nba-shotviz-service/internal/domain/zones"
)

// Provider returns a static shot chart useful for local testing and
// bootstrapping without an upstream quota.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchShotChart returns a deterministic shot log spanning the main zone
// buckets, plus a matching league baseline.
func (p *Provider) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	_ = ctx

	season := req.Season
	if season == "" {
		season = "2024-25"
	}

	shots := []domain.ShotRecord{
		{X: 5.5, Y: 0.5, Made: true, DistanceFt: 1, Season: season, Period: 1, Venue: domain.VenueHome, Opponent: "BOS"},
		{X: 6.0, Y: -1.0, Made: true, DistanceFt: 2, Season: season, Period: 1, Venue: domain.VenueHome, Opponent: "BOS"},
		{X: 4.5, Y: 2.0, Made: false, DistanceFt: 2, Season: season, Period: 2, Venue: domain.VenueHome, Opponent: "BOS"},
		{X: 12.0, Y: 4.0, Made: true, DistanceFt: 8, Season: season, Period: 2, Venue: domain.VenueHome, Opponent: "BOS"},
		{X: 16.0, Y: -11.0, Made: false, DistanceFt: 15, Season: season, Period: 3, Venue: domain.VenueAway, Opponent: "MIA"},
		{X: 17.0, Y: 12.0, Made: true, DistanceFt: 16, Season: season, Period: 3, Venue: domain.VenueAway, Opponent: "MIA"},
		{X: 2.0, Y: 23.5, Made: true, DistanceFt: 23, Season: season, Period: 4, Venue: domain.VenueAway, Opponent: "MIA"},
		{X: 2.0, Y: -23.5, Made: false, DistanceFt: 23, Season: season, Period: 4, Venue: domain.VenueAway, Opponent: "MIA"},
		{X: 28.0, Y: 3.0, Made: false, DistanceFt: 25, Season: season, Period: 4, Venue: domain.VenueAway, Opponent: "MIA"},
		{X: 27.0, Y: -9.0, Made: true, DistanceFt: 26, Season: season, Period: 4, Venue: domain.VenueAway, Opponent: "MIA"},
	}

	league := []domainzones.LeagueZoneRow{
		{Basic: domainzones.BasicRestrictedArea, Area: domainzones.AreaCenter, LeagueFG: 0.64},
		{Basic: domainzones.BasicPaintNonRA, Area: domainzones.AreaCenter, LeagueFG: 0.43},
		{Basic: domainzones.BasicMidRange, Area: domainzones.AreaLeftCenter, LeagueFG: 0.41},
		{Basic: domainzones.BasicMidRange, Area: domainzones.AreaRightCenter, LeagueFG: 0.40},
		{Basic: domainzones.BasicLeftCorner3, Area: domainzones.AreaLeft, LeagueFG: 0.39},
		{Basic: domainzones.BasicRightCorner3, Area: domainzones.AreaRight, LeagueFG: 0.38},
		{Basic: domainzones.BasicAboveBreak3, Area: domainzones.AreaCenter, LeagueFG: 0.35},
		{Basic: domainzones.BasicAboveBreak3, Area: domainzones.AreaLeftCenter, LeagueFG: 0.36},
		{Basic: domainzones.BasicAboveBreak3, Area: domainzones.AreaRightCenter, LeagueFG: 0.35},
	}

	return domain.ShotChart{Shots: shots, LeagueAverages: league}, nil
}
