package statsapi

import "time"

const (
	providerName = "statsapi"

	defaultBaseURL     = "https://stats.nba.com"
	defaultHTTPTimeout = 15 * time.Second
	// The endpoint rejects requests without a browser-ish user agent.
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

	defaultSeasonType = "Regular Season"

	shotChartDetailSet = "Shot_Chart_Detail"
	leagueAveragesSet  = "LeagueAverages"
)
