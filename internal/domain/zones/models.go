package zones

// BasicZone is the coarse court region category used by the shot-zone
// taxonomy. Values mirror the upstream stats feed labels verbatim so tagged
// shots round-trip without translation.
type BasicZone string

const (
	BasicRestrictedArea BasicZone = "Restricted Area"
	BasicPaintNonRA     BasicZone = "In The Paint (Non-RA)"
	BasicMidRange       BasicZone = "Mid-Range"
	BasicLeftCorner3    BasicZone = "Left Corner 3"
	BasicRightCorner3   BasicZone = "Right Corner 3"
	BasicAboveBreak3    BasicZone = "Above the Break 3"
	BasicBackcourt      BasicZone = "Backcourt"
	BasicNone           BasicZone = "None"
)

// AreaZone is the left/center/right lane subdivision within a basic zone.
type AreaZone string

const (
	AreaLeft        AreaZone = "Left Side(L)"
	AreaLeftCenter  AreaZone = "Left Side Center(LC)"
	AreaCenter      AreaZone = "Center(C)"
	AreaRightCenter AreaZone = "Right Side Center(RC)"
	AreaRight       AreaZone = "Right Side(R)"
	AreaBackCourt   AreaZone = "Back Court(BC)"
	AreaNone        AreaZone = "None"
)

// ZoneKey identifies one statistical bucket. Keys are comparable and are
// expected to carry an already-collapsed area.
type ZoneKey struct {
	Basic BasicZone `json:"basic"`
	Area  AreaZone  `json:"area"`
}

// Label renders the grid-cell label form "<basic>_<area>".
func (k ZoneKey) Label() string {
	return string(k.Basic) + "_" + string(k.Area)
}

// ZoneStat accumulates attempt/make counts for one bucket.
type ZoneStat struct {
	Attempts int `json:"attempts"`
	Makes    int `json:"makes"`
}

// FGPct returns makes/attempts, or 0.0 for an empty bucket.
func (s ZoneStat) FGPct() float64 {
	if s.Attempts <= 0 {
		return 0.0
	}
	return float64(s.Makes) / float64(s.Attempts)
}

// LeagueZoneRow is one pre-aggregated league baseline entry as delivered by
// the upstream feed.
type LeagueZoneRow struct {
	Basic    BasicZone `json:"basic"`
	Area     AreaZone  `json:"area"`
	LeagueFG float64   `json:"leagueFg"`
}

// ZoneDiff is the merged player-vs-league entry for one bucket.
type ZoneDiff struct {
	PlayerFG float64 `json:"playerFg"`
	LeagueFG float64 `json:"leagueFg"`
	Diff     float64 `json:"diff"`
}
