package court

import "math"

// Half-court dimensions and fixtures in feet. The coordinate frame puts the
// origin at the center of the baseline: x grows toward half court, y is
// lateral with positive y on the offense's left side.
const (
	LengthHalf = 47.0
	Width      = 50.0

	HoopX     = 5.25
	HoopY     = 0.0
	RimHeight = 10.0
	RimRadius = 0.75

	RestrictedAreaRadius = 4.0
	LaneHalfWidth        = 8.0
	FreeThrowLineX       = 19.0
	FreeThrowCircleR     = 6.0

	CornerThreeY      = 22.0
	CornerThreeBreakX = 14.0
	ThreePointRadius  = 23.75

	// Lane thresholds used for left/center/right area classification.
	CenterLaneY = 8.0
	SideLaneY   = 16.0
)

// Line3D is a drawable polyline handed to the rendering surface.
type Line3D struct {
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Z       []float64 `json:"z"`
	Width   int       `json:"width"`
	Color   string    `json:"color"`
	Opacity float64   `json:"opacity"`
}

// NewLine3D builds a styled polyline from coordinate slices.
func NewLine3D(x, y, z []float64, width int, color string, opacity float64) Line3D {
	return Line3D{X: x, Y: y, Z: z, Width: width, Color: color, Opacity: opacity}
}

const (
	lineWidth   = 3
	lineColor   = "#1f1f1f"
	lineOpacity = 1.0
	arcSteps    = 48
)

// Lines returns the half-court markings as floor-level polylines: boundary,
// lane, free-throw circle, restricted arc, three-point line, and rim.
func Lines() []Line3D {
	lines := []Line3D{
		// Court boundary: baseline, both sidelines, half-court line.
		flatLine(
			[]float64{0, LengthHalf, LengthHalf, 0, 0},
			[]float64{-Width / 2, -Width / 2, Width / 2, Width / 2, -Width / 2},
		),
		// Lane box.
		flatLine(
			[]float64{0, FreeThrowLineX, FreeThrowLineX, 0},
			[]float64{-LaneHalfWidth, -LaneHalfWidth, LaneHalfWidth, LaneHalfWidth},
		),
		arcLine(FreeThrowLineX, 0, FreeThrowCircleR, -math.Pi/2, math.Pi/2, 0),
		arcLine(HoopX, HoopY, RestrictedAreaRadius, -math.Pi/2, math.Pi/2, 0),
		threePointLine(),
		rimCircle(),
	}
	return lines
}

func flatLine(x, y []float64) Line3D {
	z := make([]float64, len(x))
	return NewLine3D(x, y, z, lineWidth, lineColor, lineOpacity)
}

// arcLine traces a circular arc centered on (cx, cy) at height z. Angles are
// measured from the +x axis toward +y.
func arcLine(cx, cy, r, from, to, z float64) Line3D {
	xs := make([]float64, arcSteps+1)
	ys := make([]float64, arcSteps+1)
	zs := make([]float64, arcSteps+1)
	for i := 0; i <= arcSteps; i++ {
		theta := from + (to-from)*float64(i)/float64(arcSteps)
		xs[i] = cx + r*math.Cos(theta)
		ys[i] = cy + r*math.Sin(theta)
		zs[i] = z
	}
	return NewLine3D(xs, ys, zs, lineWidth, lineColor, lineOpacity)
}

// threePointLine joins the two corner segments with the arc between the
// break points.
func threePointLine() Line3D {
	// Angle where the arc meets the corner line at |y| = CornerThreeY.
	breakSin := CornerThreeY / ThreePointRadius
	breakAngle := math.Asin(breakSin)

	xs := []float64{0}
	ys := []float64{-CornerThreeY}
	for i := 0; i <= arcSteps; i++ {
		theta := -breakAngle + 2*breakAngle*float64(i)/float64(arcSteps)
		xs = append(xs, HoopX+ThreePointRadius*math.Cos(theta))
		ys = append(ys, HoopY+ThreePointRadius*math.Sin(theta))
	}
	xs = append(xs, 0)
	ys = append(ys, CornerThreeY)
	zs := make([]float64, len(xs))
	return NewLine3D(xs, ys, zs, lineWidth, lineColor, lineOpacity)
}

func rimCircle() Line3D {
	return arcLine(HoopX, HoopY, RimRadius, 0, 2*math.Pi, RimHeight)
}
