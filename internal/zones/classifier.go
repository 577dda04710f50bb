package zones

import (
	"math"

	"nba-shotviz-service/internal/court"
	domainzones "nba-shotviz-service/internal/domain/zones"
)

// ClassifyBasicZone maps a court coordinate to its basic zone. Regions are
// tested in a fixed priority order (backcourt, restricted area, paint,
// corner threes, above-the-break three, mid-range, none) with every
// predicate widened by pad; the ordering resolves the overlap pad
// introduces, so the result is a total partition for any pad >= 0.
//
// Callers classifying grid cells should pass pad = half the bin width so a
// cell straddling a region boundary lands in the same zone regardless of
// bin alignment.
func ClassifyBasicZone(x, y, pad float64) domainzones.BasicZone {
	if x > court.LengthHalf+pad {
		return domainzones.BasicBackcourt
	}
	if x < -pad || math.Abs(y) > court.Width/2+pad {
		return domainzones.BasicNone
	}

	dist := math.Hypot(x-court.HoopX, y-court.HoopY)
	if dist <= court.RestrictedAreaRadius+pad {
		return domainzones.BasicRestrictedArea
	}
	if x <= court.FreeThrowLineX+pad && math.Abs(y) <= court.LaneHalfWidth+pad {
		return domainzones.BasicPaintNonRA
	}
	if x <= court.CornerThreeBreakX+pad && math.Abs(y) >= court.CornerThreeY-pad {
		if y > 0 {
			return domainzones.BasicLeftCorner3
		}
		return domainzones.BasicRightCorner3
	}
	if dist >= court.ThreePointRadius-pad {
		return domainzones.BasicAboveBreak3
	}
	return domainzones.BasicMidRange
}

// ClassifyAreaZone maps the lateral coordinate to its lane. Positive y is
// the offense's left side.
func ClassifyAreaZone(y float64) domainzones.AreaZone {
	switch {
	case y >= court.SideLaneY:
		return domainzones.AreaLeft
	case y >= court.CenterLaneY:
		return domainzones.AreaLeftCenter
	case y > -court.CenterLaneY:
		return domainzones.AreaCenter
	case y > -court.SideLaneY:
		return domainzones.AreaRightCenter
	default:
		return domainzones.AreaRight
	}
}

// CollapseATBArea merges the side and side-center lanes of an
// above-the-break three into one bucket per side. Idempotent.
func CollapseATBArea(area domainzones.AreaZone) domainzones.AreaZone {
	switch area {
	case domainzones.AreaLeft, domainzones.AreaLeftCenter:
		return domainzones.AreaLeft
	case domainzones.AreaRight, domainzones.AreaRightCenter:
		return domainzones.AreaRight
	default:
		return domainzones.AreaCenter
	}
}

// areaRule describes how a basic zone derives its area bucket. Zones absent
// from the table take the default rule: lane by y, no collapse.
type areaRule struct {
	forceCenter bool
	collapseATB bool
}

var areaRules = map[domainzones.BasicZone]areaRule{
	domainzones.BasicRestrictedArea: {forceCenter: true},
	domainzones.BasicPaintNonRA:     {forceCenter: true},
	domainzones.BasicAboveBreak3:    {collapseATB: true},
}

// AreaFor derives the statistical area bucket for a basic zone at lateral
// coordinate y, applying the forced-center and collapse rules.
func AreaFor(basic domainzones.BasicZone, y float64) domainzones.AreaZone {
	rule := areaRules[basic]
	if rule.forceCenter {
		return domainzones.AreaCenter
	}
	area := ClassifyAreaZone(y)
	if rule.collapseATB {
		area = CollapseATBArea(area)
	}
	return area
}

// CollapseKey normalizes a tagged (basic, area) pair into its statistical
// bucket, collapsing above-the-break areas.
func CollapseKey(basic domainzones.BasicZone, area domainzones.AreaZone) domainzones.ZoneKey {
	if areaRules[basic].collapseATB {
		area = CollapseATBArea(area)
	}
	return domainzones.ZoneKey{Basic: basic, Area: area}
}
