package zones

import (
	"math"
	"testing"

	"nba-shotviz-service/internal/domain"
	domainzones "nba-shotviz-service/internal/domain/zones"
)

func TestBuildPlayerZoneTableCountsByBucket(t *testing.T) {
	shots := []domain.ShotRecord{
		{X: 5.5, Y: 0.5, Made: true},
		{X: 6.0, Y: -1.0, Made: true},
		{X: 4.5, Y: 2.0, Made: false},
		{X: 16.0, Y: -11.0, Made: true},
	}

	table := BuildPlayerZoneTable(shots)

	ra := domainzones.ZoneKey{Basic: domainzones.BasicRestrictedArea, Area: domainzones.AreaCenter}
	if zs := table[ra]; zs.Attempts != 3 || zs.Makes != 2 {
		t.Fatalf("restricted area stat = %+v, want 3 attempts 2 makes", zs)
	}

	mid := domainzones.ZoneKey{Basic: domainzones.BasicMidRange, Area: domainzones.AreaRightCenter}
	if zs := table[mid]; zs.Attempts != 1 || zs.Makes != 1 {
		t.Fatalf("mid-range stat = %+v, want 1 attempt 1 make", zs)
	}
}

func TestBuildPlayerZoneTableDiscardsNoSignalZones(t *testing.T) {
	shots := []domain.ShotRecord{
		{X: 60, Y: 0, Made: false},
		{X: -3, Y: 0, Made: true},
		{BasicZone: domainzones.BasicBackcourt, AreaZone: domainzones.AreaBackCourt, Made: true},
	}

	if table := BuildPlayerZoneTable(shots); len(table) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestBuildPlayerZoneTableTrustsUpstreamTags(t *testing.T) {
	// Coordinates say restricted area; the upstream tag says mid-range. The
	// tag wins so player buckets line up with the league feed.
	shots := []domain.ShotRecord{
		{X: 5.5, Y: 0.5, Made: true, BasicZone: domainzones.BasicMidRange, AreaZone: domainzones.AreaCenter},
	}

	table := BuildPlayerZoneTable(shots)
	key := domainzones.ZoneKey{Basic: domainzones.BasicMidRange, Area: domainzones.AreaCenter}
	if zs := table[key]; zs.Attempts != 1 {
		t.Fatalf("tagged shot not bucketed by its tags: %v", table)
	}
}

func TestBuildLeagueZoneTableAveragesCollapsedLanes(t *testing.T) {
	rows := []domainzones.LeagueZoneRow{
		{Basic: domainzones.BasicAboveBreak3, Area: domainzones.AreaLeft, LeagueFG: 0.40},
		{Basic: domainzones.BasicAboveBreak3, Area: domainzones.AreaLeftCenter, LeagueFG: 0.30},
		{Basic: domainzones.BasicMidRange, Area: domainzones.AreaCenter, LeagueFG: 0.45},
		{Basic: domainzones.BasicBackcourt, Area: domainzones.AreaBackCourt, LeagueFG: 0.02},
	}

	table := BuildLeagueZoneTable(rows)

	left := domainzones.ZoneKey{Basic: domainzones.BasicAboveBreak3, Area: domainzones.AreaLeft}
	if got := table[left]; math.Abs(got-0.35) > 1e-9 {
		t.Fatalf("collapsed left lane FG = %v, want 0.35", got)
	}
	mid := domainzones.ZoneKey{Basic: domainzones.BasicMidRange, Area: domainzones.AreaCenter}
	if got := table[mid]; got != 0.45 {
		t.Fatalf("mid-range FG = %v, want 0.45", got)
	}
	if len(table) != 2 {
		t.Fatalf("backcourt row should be discarded, table = %v", table)
	}
}

func TestMergeZoneTables(t *testing.T) {
	ra := domainzones.ZoneKey{Basic: domainzones.BasicRestrictedArea, Area: domainzones.AreaCenter}
	mid := domainzones.ZoneKey{Basic: domainzones.BasicMidRange, Area: domainzones.AreaCenter}

	player := map[domainzones.ZoneKey]domainzones.ZoneStat{
		ra:  {Attempts: 20, Makes: 11},
		mid: {Attempts: 10, Makes: 4},
	}
	league := map[domainzones.ZoneKey]float64{
		ra: 0.60,
	}

	merged := MergeZoneTables(player, league)

	if d := merged[ra]; math.Abs(d.Diff-(-0.05)) > 1e-9 {
		t.Fatalf("restricted area diff = %v, want -0.05", d.Diff)
	}
	// No league entry: diff reads neutral, not undefined.
	if d := merged[mid]; d.Diff != 0 || d.LeagueFG != d.PlayerFG {
		t.Fatalf("mid-range fallback = %+v, want diff 0 with league = player", d)
	}
}

func TestMergeZoneTablesEmptyBucketIsZero(t *testing.T) {
	key := domainzones.ZoneKey{Basic: domainzones.BasicMidRange, Area: domainzones.AreaCenter}
	player := map[domainzones.ZoneKey]domainzones.ZoneStat{key: {}}

	merged := MergeZoneTables(player, nil)
	if d := merged[key]; d.PlayerFG != 0 || d.Diff != 0 {
		t.Fatalf("zero-attempt bucket = %+v, want all zeros", d)
	}
}
