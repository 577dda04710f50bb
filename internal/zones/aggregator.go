package zones

import (
	"gonum.org/v1/gonum/stat"

	"nba-shotviz-service/internal/domain"
	domainzones "nba-shotviz-service/internal/domain/zones"
)

// disallowedAreas are area tags whose rows are discarded before grouping:
// back-court heaves and unresolved classifications carry no zone signal.
var disallowedAreas = map[domainzones.AreaZone]bool{
	domainzones.AreaBackCourt: true,
	domainzones.AreaNone:      true,
	"":                        true,
}

func disallowed(basic domainzones.BasicZone, area domainzones.AreaZone) bool {
	return disallowedAreas[area] ||
		basic == domainzones.BasicBackcourt ||
		basic == domainzones.BasicNone ||
		basic == ""
}

// shotKey resolves the statistical bucket for one shot, trusting upstream
// zone tags when present and classifying from coordinates otherwise.
func shotKey(s domain.ShotRecord) domainzones.ZoneKey {
	if s.Tagged() {
		return CollapseKey(s.BasicZone, s.AreaZone)
	}
	basic := ClassifyBasicZone(s.X, s.Y, 0)
	return domainzones.ZoneKey{Basic: basic, Area: AreaFor(basic, s.Y)}
}

// BuildPlayerZoneTable reduces a shot log to per-bucket attempt/make counts.
// Shots in disallowed zones are excluded; the function never fails.
func BuildPlayerZoneTable(shots []domain.ShotRecord) map[domainzones.ZoneKey]domainzones.ZoneStat {
	table := make(map[domainzones.ZoneKey]domainzones.ZoneStat)
	for _, s := range shots {
		key := shotKey(s)
		if disallowed(key.Basic, key.Area) {
			continue
		}
		zs := table[key]
		zs.Attempts++
		if s.Made {
			zs.Makes++
		}
		table[key] = zs
	}
	return table
}

// BuildLeagueZoneTable reduces pre-aggregated league rows to a per-bucket
// FG% table. Rows sharing a bucket after area collapse are averaged.
func BuildLeagueZoneTable(rows []domainzones.LeagueZoneRow) map[domainzones.ZoneKey]float64 {
	grouped := make(map[domainzones.ZoneKey][]float64)
	for _, row := range rows {
		if disallowed(row.Basic, row.Area) {
			continue
		}
		key := CollapseKey(row.Basic, row.Area)
		grouped[key] = append(grouped[key], row.LeagueFG)
	}

	table := make(map[domainzones.ZoneKey]float64, len(grouped))
	for key, fgs := range grouped {
		table[key] = stat.Mean(fgs, nil)
	}
	return table
}

// MergeZoneTables left-joins the player table against the league table.
// Buckets with no league entry fall back to the player's own FG%, so the
// diff reads 0 rather than undefined: no information, assume neutral.
func MergeZoneTables(player map[domainzones.ZoneKey]domainzones.ZoneStat, league map[domainzones.ZoneKey]float64) map[domainzones.ZoneKey]domainzones.ZoneDiff {
	merged := make(map[domainzones.ZoneKey]domainzones.ZoneDiff, len(player))
	for key, zs := range player {
		playerFG := zs.FGPct()
		leagueFG, ok := league[key]
		if !ok {
			leagueFG = playerFG
		}
		merged[key] = domainzones.ZoneDiff{
			PlayerFG: playerFG,
			LeagueFG: leagueFG,
			Diff:     playerFG - leagueFG,
		}
	}
	return merged
}
