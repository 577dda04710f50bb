package domain

import (
	"fmt"

	"nba-shotviz-service/internal/domain/zones"
)

// ShotRecord is one attempt from a player's shot log. Coordinates are in
// court feet (x from the baseline toward half court, y lateral). Zone tags
// are optional; untagged shots are classified from coordinates.
type ShotRecord struct {
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Made       bool            `json:"made"`
	DistanceFt float64         `json:"distanceFt"`
	BasicZone  zones.BasicZone `json:"basicZone,omitempty"`
	AreaZone   zones.AreaZone  `json:"areaZone,omitempty"`
	Season     string          `json:"season,omitempty"`
	Period     int             `json:"period,omitempty"`
	Venue      string          `json:"venue,omitempty"`
	Opponent   string          `json:"opponent,omitempty"`
	TeamID     int             `json:"teamId,omitempty"`
}

// Tagged reports whether the record carries usable upstream zone tags.
func (s ShotRecord) Tagged() bool {
	return s.BasicZone != "" && s.AreaZone != ""
}

// ShotChart bundles a player's shot log with the matching league baseline
// for one request.
type ShotChart struct {
	Shots          []ShotRecord          `json:"shots"`
	LeagueAverages []zones.LeagueZoneRow `json:"leagueAverages"`
}

// ChartRequest identifies one upstream shot-chart fetch.
type ChartRequest struct {
	PlayerID   int
	Season     string
	SeasonType string
}

// Key returns the memoization key for this request.
func (r ChartRequest) Key() string {
	return fmt.Sprintf("shotchart:%d:%s:%s", r.PlayerID, r.Season, r.SeasonType)
}

const (
	VenueHome = "Home"
	VenueAway = "Away"
)
