package charts

import "nba-shotviz-service/internal/court"

// DiffGrid is the regular half-court lattice of player-minus-league FG%
// values. All arrays are indexed [row][col] with rows spanning y and columns
// spanning x. Labels and Hover are nil unless requested.
type DiffGrid struct {
	X      [][]float64 `json:"x"`
	Y      [][]float64 `json:"y"`
	Diff   [][]float64 `json:"diff"`
	Labels [][]string  `json:"labels,omitempty"`
	Hover  [][]string  `json:"hover,omitempty"`
	BinFt  float64     `json:"binFt"`
}

// Rows returns the lattice height.
func (g *DiffGrid) Rows() int { return len(g.Diff) }

// Cols returns the lattice width.
func (g *DiffGrid) Cols() int {
	if len(g.Diff) == 0 {
		return 0
	}
	return len(g.Diff[0])
}

// BoundarySegment is one drawable edge between two grid cells whose zone
// labels differ. Halo marks the wider underlay copy of a segment.
type BoundarySegment struct {
	X0      float64 `json:"x0"`
	Y0      float64 `json:"y0"`
	X1      float64 `json:"x1"`
	Y1      float64 `json:"y1"`
	Z       float64 `json:"z"`
	Halo    bool    `json:"halo"`
	Width   int     `json:"width"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// ShotArc is one synthesized 3D trajectory, ordered release to hoop.
type ShotArc struct {
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Z     []float64 `json:"z"`
	Made  bool      `json:"made"`
	Color string    `json:"color"`
	Hover string    `json:"hover,omitempty"`
}

// ApexProfile drives arc peak height as a function of shot distance:
// apex = clamp(Base + Slope*distance, Lo, Hi).
type ApexProfile struct {
	Base  float64 `json:"base"`
	Slope float64 `json:"slope"`
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
}

// Apex evaluates the profile for one shot distance.
func (p ApexProfile) Apex(distanceFt float64) float64 {
	apex := p.Base + p.Slope*distanceFt
	if apex < p.Lo {
		return p.Lo
	}
	if apex > p.Hi {
		return p.Hi
	}
	return apex
}

// ChartPayload is the full set of geometric primitives handed to the
// rendering collaborator for one request.
type ChartPayload struct {
	Court         []court.Line3D    `json:"court"`
	Grid          *DiffGrid         `json:"grid,omitempty"`
	Boundaries    []BoundarySegment `json:"boundaries,omitempty"`
	Arcs          []ShotArc         `json:"arcs"`
	RenderedShots int               `json:"renderedShots"`
	TotalShots    int               `json:"totalShots"`
	VLim          float64           `json:"vlim,omitempty"`
}
