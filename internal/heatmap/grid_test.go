package heatmap

import (
	"strings"
	"testing"

	domainzones "nba-shotviz-service/internal/domain/zones"
)

func TestBuildDiffGridDimensionsIgnoreData(t *testing.T) {
	empty := BuildDiffGrid(nil, 2.0, GridOptions{})
	full := BuildDiffGrid(map[domainzones.ZoneKey]domainzones.ZoneDiff{
		{Basic: domainzones.BasicRestrictedArea, Area: domainzones.AreaCenter}: {Diff: 0.1},
	}, 2.0, GridOptions{})

	if empty.Rows() != full.Rows() || empty.Cols() != full.Cols() {
		t.Fatalf("dimensions vary with data: %dx%d vs %dx%d",
			empty.Rows(), empty.Cols(), full.Rows(), full.Cols())
	}
	// Half court is 47ft long and 50ft wide: 23 columns, 25 rows at 2ft bins.
	if empty.Rows() != 25 || empty.Cols() != 23 {
		t.Fatalf("grid = %dx%d, want 25x23", empty.Rows(), empty.Cols())
	}
}

func TestBuildDiffGridEmptyTableIsAllZero(t *testing.T) {
	grid := BuildDiffGrid(nil, 2.0, GridOptions{})
	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			if grid.Diff[i][j] != 0 {
				t.Fatalf("cell (%d,%d) = %v, want 0", i, j, grid.Diff[i][j])
			}
		}
	}
	if grid.Labels != nil || grid.Hover != nil {
		t.Fatalf("optional layers built without being requested")
	}
}

func TestBuildDiffGridFillsMatchingCells(t *testing.T) {
	ra := domainzones.ZoneKey{Basic: domainzones.BasicRestrictedArea, Area: domainzones.AreaCenter}
	merged := map[domainzones.ZoneKey]domainzones.ZoneDiff{
		ra: {PlayerFG: 0.70, LeagueFG: 0.60, Diff: 0.10},
	}

	grid := BuildDiffGrid(merged, 2.0, GridOptions{Labels: true, Hover: true})

	// Cell centered at (5, 0) sits on the rim and must carry the restricted
	// area diff and label.
	i, j := 12, 2
	if grid.X[i][j] != 5 || grid.Y[i][j] != 0 {
		t.Fatalf("cell (%d,%d) center = (%v,%v), want (5,0)", i, j, grid.X[i][j], grid.Y[i][j])
	}
	if grid.Diff[i][j] != 0.10 {
		t.Fatalf("rim cell diff = %v, want 0.10", grid.Diff[i][j])
	}
	if want := ra.Label(); grid.Labels[i][j] != want {
		t.Fatalf("rim cell label = %q, want %q", grid.Labels[i][j], want)
	}
	if !strings.Contains(grid.Hover[i][j], "Player FG%: 70.0%") {
		t.Fatalf("rim cell hover = %q", grid.Hover[i][j])
	}
	if !strings.Contains(grid.Hover[i][j], "+10.0%") {
		t.Fatalf("rim cell hover missing signed diff: %q", grid.Hover[i][j])
	}

	// A far corner cell has no entry: zero diff, explicit no-data hover.
	if grid.Diff[0][0] != 0 {
		t.Fatalf("corner cell diff = %v, want 0", grid.Diff[0][0])
	}
	if !strings.Contains(grid.Hover[0][0], "No data") {
		t.Fatalf("corner cell hover = %q, want no-data text", grid.Hover[0][0])
	}
}

func TestBuildDiffGridDefaultsBinWidth(t *testing.T) {
	grid := BuildDiffGrid(nil, 0, GridOptions{})
	if grid.BinFt != DefaultBinFt {
		t.Fatalf("BinFt = %v, want %v", grid.BinFt, DefaultBinFt)
	}
}

func TestBuildDiffGridFinerBins(t *testing.T) {
	grid := BuildDiffGrid(nil, 1.0, GridOptions{})
	if grid.Rows() != 50 || grid.Cols() != 47 {
		t.Fatalf("1ft grid = %dx%d, want 50x47", grid.Rows(), grid.Cols())
	}
}
