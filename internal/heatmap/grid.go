package heatmap

import (
	"fmt"
	"math"

	"nba-shotviz-service/internal/court"
	"nba-shotviz-service/internal/domain/charts"
	domainzones "nba-shotviz-service/internal/domain/zones"
	"nba-shotviz-service/internal/zones"
)

// DefaultBinFt is the lattice bin width used when a request leaves it unset.
const DefaultBinFt = 2.0

// GridOptions controls the optional label and hover-text layers.
type GridOptions struct {
	Labels bool
	Hover  bool
}

// BuildDiffGrid lays a regular lattice over the half court and fills each
// cell with the player-minus-league FG% difference for the zone the cell
// center classifies into. Cells whose bucket is absent from the merged table
// read exactly 0.0. Grid dimensions depend only on the court bounds and bin
// width, never on data content.
func BuildDiffGrid(merged map[domainzones.ZoneKey]domainzones.ZoneDiff, binFt float64, opts GridOptions) *charts.DiffGrid {
	if binFt <= 0 {
		binFt = DefaultBinFt
	}

	xCenters := centers(binFt/2, court.LengthHalf, binFt)
	yCenters := centers(-court.Width/2+binFt/2, court.Width/2, binFt)

	rows, cols := len(yCenters), len(xCenters)
	grid := &charts.DiffGrid{
		X:     make([][]float64, rows),
		Y:     make([][]float64, rows),
		Diff:  make([][]float64, rows),
		BinFt: binFt,
	}
	if opts.Labels {
		grid.Labels = make([][]string, rows)
	}
	if opts.Hover {
		grid.Hover = make([][]string, rows)
	}

	pad := binFt / 2
	for i := 0; i < rows; i++ {
		grid.X[i] = make([]float64, cols)
		grid.Y[i] = make([]float64, cols)
		grid.Diff[i] = make([]float64, cols)
		if opts.Labels {
			grid.Labels[i] = make([]string, cols)
		}
		if opts.Hover {
			grid.Hover[i] = make([]string, cols)
		}

		for j := 0; j < cols; j++ {
			x, y := xCenters[j], yCenters[i]
			grid.X[i][j] = x
			grid.Y[i][j] = y

			key := classifyCell(x, y, pad)
			entry, ok := merged[key]
			grid.Diff[i][j] = zeroIfNaN(entry.Diff)
			if opts.Labels {
				grid.Labels[i][j] = key.Label()
			}
			if opts.Hover {
				grid.Hover[i][j] = hoverText(key, entry, ok)
			}
		}
	}
	return grid
}

// classifyCell resolves the statistical bucket for one cell center.
func classifyCell(x, y, pad float64) domainzones.ZoneKey {
	basic := zones.ClassifyBasicZone(x, y, pad)
	return domainzones.ZoneKey{Basic: basic, Area: zones.AreaFor(basic, y)}
}

func hoverText(key domainzones.ZoneKey, entry domainzones.ZoneDiff, ok bool) string {
	if !ok {
		return fmt.Sprintf("<b>%s</b> - %s<br>No data", key.Basic, key.Area)
	}
	return fmt.Sprintf(
		"<b>%s</b> - %s<br>Player FG%%: %.1f%%<br>League FG%%: %.1f%%<br>Δ: %+.1f%%",
		key.Basic, key.Area,
		entry.PlayerFG*100, entry.LeagueFG*100, entry.Diff*100,
	)
}

// centers enumerates lattice centers in [start, limit) with the given step.
func centers(start, limit, step float64) []float64 {
	var out []float64
	for v := start; v < limit; v += step {
		out = append(out, v)
	}
	return out
}

// zeroIfNaN is the explicit "no data renders as neutral" rule: NaN must
// never cross the rendering boundary.
func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0.0
	}
	return v
}
