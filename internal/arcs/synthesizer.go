package arcs

import (
	"fmt"
	"math/rand"
	"sort"

	"nba-shotviz-service/internal/court"
	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/domain/charts"
)

const (
	// DefaultSamples gives visually smooth arcs; exactness is not the goal.
	DefaultSamples = 32

	MadeColor = "#2e7d32"
	MissColor = "#c62828"
)

// Options controls arc synthesis for one render pass.
type Options struct {
	Profile         charts.ApexProfile
	ReleaseHeightFt float64
	Samples         int
	// SampleCap bounds how many shots get arcs; 0 or negative means all.
	SampleCap int
	// UniformColor overrides make/miss coloring when non-empty, used to
	// de-emphasize arcs under a heatmap overlay.
	UniformColor string
	Hover        bool
}

// Synthesizer converts shots into 3D trajectories. Rand is the subsampling
// source; tests inject a seeded one, production uses the process source.
type Synthesizer struct {
	Rand *rand.Rand
}

// New returns a Synthesizer using the process-level random source.
func New() *Synthesizer {
	return &Synthesizer{}
}

// NewSeeded returns a Synthesizer with a deterministic subsampling source.
func NewSeeded(seed int64) *Synthesizer {
	return &Synthesizer{Rand: rand.New(rand.NewSource(seed))}
}

// BuildArcs synthesizes one arc per (possibly subsampled) shot and reports
// how many shots were actually rendered.
func (s *Synthesizer) BuildArcs(shots []domain.ShotRecord, opts Options) ([]charts.ShotArc, int) {
	selected := s.sample(shots, opts.SampleCap)
	out := make([]charts.ShotArc, 0, len(selected))
	for _, shot := range selected {
		out = append(out, BuildArc(shot, opts))
	}
	return out, len(selected)
}

// sample draws a uniform subsample without replacement when the cap is
// smaller than the shot count, preserving the original ordering.
func (s *Synthesizer) sample(shots []domain.ShotRecord, limit int) []domain.ShotRecord {
	if limit <= 0 || limit >= len(shots) {
		return shots
	}
	perm := s.perm(len(shots))
	idx := perm[:limit]
	sort.Ints(idx)

	selected := make([]domain.ShotRecord, limit)
	for i, k := range idx {
		selected[i] = shots[k]
	}
	return selected
}

func (s *Synthesizer) perm(n int) []int {
	if s.Rand != nil {
		return s.Rand.Perm(n)
	}
	return rand.Perm(n)
}

// BuildArc traces a quadratic Bezier from the release point to the rim. The
// control point sits over the path midpoint at a height chosen so the curve
// passes through the apex at its parametric midpoint.
func BuildArc(shot domain.ShotRecord, opts Options) charts.ShotArc {
	samples := opts.Samples
	if samples < 2 {
		samples = DefaultSamples
	}

	x0, y0, z0 := shot.X, shot.Y, opts.ReleaseHeightFt
	x2, y2, z2 := court.HoopX, court.HoopY, court.RimHeight

	apex := opts.Profile.Apex(shot.DistanceFt)
	// B(0.5) = P0/4 + P1/2 + P2/4, so the midpoint hits apex when
	// P1z = 2*apex - (z0+z2)/2.
	cx, cy := (x0+x2)/2, (y0+y2)/2
	cz := 2*apex - (z0+z2)/2

	arc := charts.ShotArc{
		X:     make([]float64, samples),
		Y:     make([]float64, samples),
		Z:     make([]float64, samples),
		Made:  shot.Made,
		Color: arcColor(shot, opts),
	}
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		u := 1 - t
		arc.X[i] = u*u*x0 + 2*u*t*cx + t*t*x2
		arc.Y[i] = u*u*y0 + 2*u*t*cy + t*t*y2
		arc.Z[i] = u*u*z0 + 2*u*t*cz + t*t*z2
	}
	// Endpoints are exact by construction; pin them anyway so accumulated
	// float error never shifts the release or rim point.
	arc.X[0], arc.Y[0], arc.Z[0] = x0, y0, z0
	arc.X[samples-1], arc.Y[samples-1], arc.Z[samples-1] = x2, y2, z2

	if opts.Hover {
		arc.Hover = hoverText(shot)
	}
	return arc
}

func arcColor(shot domain.ShotRecord, opts Options) string {
	if opts.UniformColor != "" {
		return opts.UniformColor
	}
	if shot.Made {
		return MadeColor
	}
	return MissColor
}

func hoverText(shot domain.ShotRecord) string {
	result := "Miss"
	if shot.Made {
		result = "Make"
	}
	text := fmt.Sprintf("%s, %.0f ft", result, shot.DistanceFt)
	if shot.Opponent != "" {
		text += " vs " + shot.Opponent
	}
	if shot.Season != "" {
		text += " (" + shot.Season + ")"
	}
	return text
}
