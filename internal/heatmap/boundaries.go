package heatmap

import "nba-shotviz-service/internal/domain/charts"

// BoundaryStyle controls how traced segments are drawn. The halo copy is a
// wider, lighter underlay emitted before its main segment so outlines stay
// legible over both hot and cold cells.
type BoundaryStyle struct {
	ZLift          float64
	Width          int
	Color          string
	Halo           bool
	HaloWidthExtra int
	HaloColor      string
	HaloOpacity    float64
}

// DefaultBoundaryStyle mirrors the rendering defaults of the overlay mode.
func DefaultBoundaryStyle() BoundaryStyle {
	return BoundaryStyle{
		ZLift:          0.09,
		Width:          3,
		Color:          "black",
		Halo:           true,
		HaloWidthExtra: 3,
		HaloColor:      "white",
		HaloOpacity:    1.0,
	}
}

// TraceBoundaries scans the label grid for zone discontinuities between
// adjacent cells and emits segments along the shared cell edges. A vertical
// segment spans the row extent of a horizontally adjacent mismatch; a
// horizontal segment spans the column extent of a vertically adjacent one.
// Exactly one main segment is emitted per mismatched edge, plus one halo
// copy when enabled.
func TraceBoundaries(grid *charts.DiffGrid, style BoundaryStyle) []charts.BoundarySegment {
	if grid == nil || grid.Labels == nil || grid.Rows() == 0 || grid.Cols() == 0 {
		return nil
	}

	rows, cols := grid.Rows(), grid.Cols()
	xEdges := edges(grid.X[0])
	yCenters := make([]float64, rows)
	for i := 0; i < rows; i++ {
		yCenters[i] = grid.Y[i][0]
	}
	yEdges := edges(yCenters)

	var segs []charts.BoundarySegment
	emit := func(x0, y0, x1, y1 float64) {
		if style.Halo {
			segs = append(segs, charts.BoundarySegment{
				X0: x0, Y0: y0, X1: x1, Y1: y1, Z: style.ZLift,
				Halo:    true,
				Width:   style.Width + style.HaloWidthExtra,
				Color:   style.HaloColor,
				Opacity: style.HaloOpacity,
			})
		}
		segs = append(segs, charts.BoundarySegment{
			X0: x0, Y0: y0, X1: x1, Y1: y1, Z: style.ZLift,
			Width:   style.Width,
			Color:   style.Color,
			Opacity: 1.0,
		})
	}

	// Vertical boundaries between horizontally adjacent cells.
	for i := 0; i < rows; i++ {
		y0, y1 := yEdges[i], yEdges[i+1]
		for j := 0; j < cols-1; j++ {
			if grid.Labels[i][j] != grid.Labels[i][j+1] {
				xe := xEdges[j+1]
				emit(xe, y0, xe, y1)
			}
		}
	}

	// Horizontal boundaries between vertically adjacent cells.
	for i := 0; i < rows-1; i++ {
		ye := yEdges[i+1]
		for j := 0; j < cols; j++ {
			if grid.Labels[i][j] != grid.Labels[i+1][j] {
				emit(xEdges[j], ye, xEdges[j+1], ye)
			}
		}
	}

	return segs
}

// edges derives cell edge coordinates from center coordinates: midpoints
// between neighbors plus extrapolated outer edges.
func edges(centers []float64) []float64 {
	n := len(centers)
	if n == 0 {
		return nil
	}
	step := DefaultBinFt
	if n > 1 {
		step = centers[1] - centers[0]
	}
	out := make([]float64, 0, n+1)
	out = append(out, centers[0]-step/2)
	for i := 0; i < n-1; i++ {
		out = append(out, (centers[i]+centers[i+1])/2)
	}
	out = append(out, centers[n-1]+step/2)
	return out
}
