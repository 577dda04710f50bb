package zones

import (
	"testing"

	"nba-shotviz-service/internal/court"
	domainzones "nba-shotviz-service/internal/domain/zones"
)

func TestClassifyBasicZone(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want domainzones.BasicZone
	}{
		{"at the rim", 5.25, 0, domainzones.BasicRestrictedArea},
		{"ra edge", 5.25, 3.9, domainzones.BasicRestrictedArea},
		{"paint non-ra", 12, 4, domainzones.BasicPaintNonRA},
		{"elbow", 18, 7, domainzones.BasicPaintNonRA},
		{"baseline mid-range", 4, 12, domainzones.BasicMidRange},
		{"wing mid-range", 16, -11, domainzones.BasicMidRange},
		{"left corner three", 2, 23.5, domainzones.BasicLeftCorner3},
		{"right corner three", 2, -23.5, domainzones.BasicRightCorner3},
		{"top of the arc", 30, 0, domainzones.BasicAboveBreak3},
		{"wing three", 28, -9, domainzones.BasicAboveBreak3},
		{"backcourt", 48, 0, domainzones.BasicBackcourt},
		{"behind the baseline", -1, 0, domainzones.BasicNone},
		{"out of bounds wide", 10, 26, domainzones.BasicNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyBasicZone(tc.x, tc.y, 0)
			if got != tc.want {
				t.Fatalf("ClassifyBasicZone(%v, %v) = %q, want %q", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestClassifyBasicZoneIsTotal(t *testing.T) {
	// Every cell center in and slightly around the half court must land in
	// exactly one zone for any reasonable pad.
	for _, pad := range []float64{0, 0.5, 1.0} {
		for x := -2.0; x < court.LengthHalf+4; x += 0.5 {
			for y := -court.Width/2 - 2; y < court.Width/2+2; y += 0.5 {
				got := ClassifyBasicZone(x, y, pad)
				if got == "" {
					t.Fatalf("ClassifyBasicZone(%v, %v, %v) returned empty zone", x, y, pad)
				}
			}
		}
	}
}

func TestClassifyBasicZonePadAbsorbsBoundaryCells(t *testing.T) {
	// A cell center just outside the restricted area still classifies as
	// restricted area when the pad covers the overlap.
	x, y := court.HoopX+court.RestrictedAreaRadius+0.5, 0.0
	if got := ClassifyBasicZone(x, y, 1.0); got != domainzones.BasicRestrictedArea {
		t.Fatalf("padded classification = %q, want %q", got, domainzones.BasicRestrictedArea)
	}
	if got := ClassifyBasicZone(x, y, 0); got != domainzones.BasicPaintNonRA {
		t.Fatalf("unpadded classification = %q, want %q", got, domainzones.BasicPaintNonRA)
	}
}

func TestClassifyAreaZone(t *testing.T) {
	cases := []struct {
		y    float64
		want domainzones.AreaZone
	}{
		{20, domainzones.AreaLeft},
		{16, domainzones.AreaLeft},
		{12, domainzones.AreaLeftCenter},
		{8, domainzones.AreaLeftCenter},
		{0, domainzones.AreaCenter},
		{-7.9, domainzones.AreaCenter},
		{-12, domainzones.AreaRightCenter},
		{-16, domainzones.AreaRight},
		{-20, domainzones.AreaRight},
	}

	for _, tc := range cases {
		if got := ClassifyAreaZone(tc.y); got != tc.want {
			t.Errorf("ClassifyAreaZone(%v) = %q, want %q", tc.y, got, tc.want)
		}
	}
}

func TestCollapseATBArea(t *testing.T) {
	cases := []struct {
		in, want domainzones.AreaZone
	}{
		{domainzones.AreaLeft, domainzones.AreaLeft},
		{domainzones.AreaLeftCenter, domainzones.AreaLeft},
		{domainzones.AreaCenter, domainzones.AreaCenter},
		{domainzones.AreaRightCenter, domainzones.AreaRight},
		{domainzones.AreaRight, domainzones.AreaRight},
	}

	for _, tc := range cases {
		got := CollapseATBArea(tc.in)
		if got != tc.want {
			t.Errorf("CollapseATBArea(%q) = %q, want %q", tc.in, got, tc.want)
		}
		// Idempotent: collapsing a collapsed area is a no-op.
		if again := CollapseATBArea(got); again != got {
			t.Errorf("CollapseATBArea(%q) not idempotent: %q", got, again)
		}
	}
}

func TestAreaForForcesCenterNearTheRim(t *testing.T) {
	for _, basic := range []domainzones.BasicZone{domainzones.BasicRestrictedArea, domainzones.BasicPaintNonRA} {
		if got := AreaFor(basic, 12); got != domainzones.AreaCenter {
			t.Errorf("AreaFor(%q, 12) = %q, want %q", basic, got, domainzones.AreaCenter)
		}
	}
}

func TestAreaForCollapsesAboveBreakLanes(t *testing.T) {
	if got := AreaFor(domainzones.BasicAboveBreak3, 12); got != domainzones.AreaLeft {
		t.Fatalf("AreaFor(above break, 12) = %q, want %q", got, domainzones.AreaLeft)
	}
	if got := AreaFor(domainzones.BasicMidRange, 12); got != domainzones.AreaLeftCenter {
		t.Fatalf("AreaFor(mid-range, 12) = %q, want %q", got, domainzones.AreaLeftCenter)
	}
}

func TestCollapseKey(t *testing.T) {
	key := CollapseKey(domainzones.BasicAboveBreak3, domainzones.AreaRightCenter)
	want := domainzones.ZoneKey{Basic: domainzones.BasicAboveBreak3, Area: domainzones.AreaRight}
	if key != want {
		t.Fatalf("CollapseKey = %+v, want %+v", key, want)
	}

	key = CollapseKey(domainzones.BasicMidRange, domainzones.AreaRightCenter)
	want = domainzones.ZoneKey{Basic: domainzones.BasicMidRange, Area: domainzones.AreaRightCenter}
	if key != want {
		t.Fatalf("CollapseKey left mid-range area alone: %+v, want %+v", key, want)
	}
}
