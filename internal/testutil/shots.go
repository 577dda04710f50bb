package testutil

import (
	"nba-shotviz-service/internal/domain"
	domainzones "nba-shotviz-service/internal/domain/zones"
)

// Shot builds a minimal record at (x, y) with the given outcome.
func Shot(x, y float64, made bool) domain.ShotRecord {
	return domain.ShotRecord{X: x, Y: y, Made: made}
}

// SampleChart returns a small chart with restricted-area shots and a league
// baseline covering that bucket.
func SampleChart() domain.ShotChart {
	return domain.ShotChart{
		Shots: []domain.ShotRecord{
			{X: 5.5, Y: 0.5, Made: true, DistanceFt: 1, Period: 1},
			{X: 6.0, Y: -1.0, Made: true, DistanceFt: 2, Period: 2},
			{X: 4.5, Y: 2.0, Made: false, DistanceFt: 2, Period: 3},
			{X: 16.0, Y: -11.0, Made: false, DistanceFt: 15, Period: 4},
		},
		LeagueAverages: []domainzones.LeagueZoneRow{
			{Basic: domainzones.BasicRestrictedArea, Area: domainzones.AreaCenter, LeagueFG: 0.60},
			{Basic: domainzones.BasicMidRange, Area: domainzones.AreaRightCenter, LeagueFG: 0.40},
		},
	}
}
