package statsapi

import (
	"nba-shotviz-service/internal/court"
	"nba-shotviz-service/internal/domain"
	domainzones "nba-shotviz-service/internal/domain/zones"
)

// mapShotChart converts the raw result sets into domain models. Upstream
// coordinates are tenths of feet in a hoop-centered frame; they are rebased
// to the court frame here (x from the baseline, y lateral).
func mapShotChart(payload shotChartResponse, season string) domain.ShotChart {
	chart := domain.ShotChart{}
	for _, set := range payload.ResultSets {
		switch set.Name {
		case shotChartDetailSet:
			chart.Shots = mapShots(set, season)
		case leagueAveragesSet:
			chart.LeagueAverages = mapLeagueRows(set)
		}
	}
	return chart
}

func mapShots(set resultSet, season string) []domain.ShotRecord {
	cols := indexColumns(set.Headers)
	shots := make([]domain.ShotRecord, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		venue, opponent := venueAndOpponent(cols, row)
		shots = append(shots, domain.ShotRecord{
			X:          court.HoopX + cols.num(row, "LOC_Y")/10,
			Y:          cols.num(row, "LOC_X") / 10,
			Made:       cols.num(row, "SHOT_MADE_FLAG") == 1,
			DistanceFt: cols.num(row, "SHOT_DISTANCE"),
			BasicZone:  domainzones.BasicZone(cols.str(row, "SHOT_ZONE_BASIC")),
			AreaZone:   domainzones.AreaZone(cols.str(row, "SHOT_ZONE_AREA")),
			Season:     season,
			Period:     int(cols.num(row, "PERIOD")),
			Venue:      venue,
			Opponent:   opponent,
			TeamID:     int(cols.num(row, "TEAM_ID")),
		})
	}
	return shots
}

// venueAndOpponent derives the game venue and opposing tricode by matching
// the shooter's team against the home and visiting team columns.
func venueAndOpponent(cols columns, row []any) (string, string) {
	home := cols.str(row, "HTM")
	visitor := cols.str(row, "VTM")
	team := teamAbbreviation(cols.str(row, "TEAM_NAME"))

	switch team {
	case "":
		return "", ""
	case home:
		return domain.VenueHome, visitor
	case visitor:
		return domain.VenueAway, home
	}
	return "", ""
}

func mapLeagueRows(set resultSet) []domainzones.LeagueZoneRow {
	cols := indexColumns(set.Headers)
	rows := make([]domainzones.LeagueZoneRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		rows = append(rows, domainzones.LeagueZoneRow{
			Basic:    domainzones.BasicZone(cols.str(row, "SHOT_ZONE_BASIC")),
			Area:     domainzones.AreaZone(cols.str(row, "SHOT_ZONE_AREA")),
			LeagueFG: cols.num(row, "FG_PCT"),
		})
	}
	return rows
}
