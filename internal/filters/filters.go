package filters

import (
	"strings"

	"nba-shotviz-service/internal/domain"
)

// Result narrows a shot set by outcome.
type Result string

const (
	ResultAll    Result = "all"
	ResultMakes  Result = "makes"
	ResultMisses Result = "misses"
)

// ParseResult normalizes a result filter value, defaulting to all.
func ParseResult(raw string) Result {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "makes", "make":
		return ResultMakes
	case "misses", "miss":
		return ResultMisses
	default:
		return ResultAll
	}
}

// Filter selects a subset of a shot log before chart building. Zero values
// leave the corresponding dimension unfiltered.
type Filter struct {
	Result        Result
	Venue         string
	Opponent      string
	Periods       []int
	MinDistanceFt float64
	MaxDistanceFt float64
	Seasons       []string
}

// Apply returns the shots passing every configured predicate. The input is
// never mutated.
func Apply(shots []domain.ShotRecord, f Filter) []domain.ShotRecord {
	out := make([]domain.ShotRecord, 0, len(shots))
	for _, s := range shots {
		if !matches(s, f) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matches(s domain.ShotRecord, f Filter) bool {
	switch f.Result {
	case ResultMakes:
		if !s.Made {
			return false
		}
	case ResultMisses:
		if s.Made {
			return false
		}
	}
	if f.Venue != "" && s.Venue != f.Venue {
		return false
	}
	if f.Opponent != "" && !strings.EqualFold(s.Opponent, f.Opponent) {
		return false
	}
	if len(f.Periods) > 0 && !containsInt(f.Periods, s.Period) {
		return false
	}
	if s.DistanceFt < f.MinDistanceFt {
		return false
	}
	if f.MaxDistanceFt > 0 && s.DistanceFt > f.MaxDistanceFt {
		return false
	}
	if len(f.Seasons) > 0 && !containsString(f.Seasons, s.Season) {
		return false
	}
	return true
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
