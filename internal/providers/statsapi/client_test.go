package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/providers"
)

const sampleResponse = `{
	"resource": "shotchartdetail",
	"resultSets": [
		{
			"name": "Shot_Chart_Detail",
			"headers": ["TEAM_ID", "TEAM_NAME", "PERIOD", "SHOT_DISTANCE", "LOC_X", "LOC_Y", "SHOT_MADE_FLAG", "SHOT_ZONE_BASIC", "SHOT_ZONE_AREA", "HTM", "VTM"],
			"rowSet": [
				[1610612738, "Boston Celtics", 1, 1, 5, 3, 1, "Restricted Area", "Center(C)", "BOS", "MIA"],
				[1610612738, "Boston Celtics", 4, 25, -90, 231, 0, "Above the Break 3", "Left Side Center(LC)", "MIA", "BOS"]
			]
		},
		{
			"name": "LeagueAverages",
			"headers": ["SHOT_ZONE_BASIC", "SHOT_ZONE_AREA", "FG_PCT"],
			"rowSet": [
				["Restricted Area", "Center(C)", 0.62],
				["Above the Break 3", "Left Side Center(LC)", 0.35]
			]
		}
	]
}`

func TestClientFetchShotChart(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/shotchartdetail" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("missing user agent")
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(sampleResponse)); err != nil {
			t.Errorf("write: %v", err)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	chart, err := client.FetchShotChart(context.Background(), domain.ChartRequest{
		PlayerID: 1628369,
		Season:   "2024-25",
	})
	if err != nil {
		t.Fatalf("FetchShotChart: %v", err)
	}

	if gotQuery["PlayerID"] != "1628369" || gotQuery["Season"] != "2024-25" {
		t.Fatalf("query = %v", gotQuery)
	}
	if gotQuery["SeasonType"] != defaultSeasonType {
		t.Fatalf("SeasonType = %q, want default", gotQuery["SeasonType"])
	}
	if gotQuery["ContextMeasure"] != "FGA" || gotQuery["LeagueID"] != "00" {
		t.Fatalf("query = %v", gotQuery)
	}

	if len(chart.Shots) != 2 {
		t.Fatalf("got %d shots, want 2", len(chart.Shots))
	}
	if len(chart.LeagueAverages) != 2 {
		t.Fatalf("got %d league rows, want 2", len(chart.LeagueAverages))
	}
}

func TestClientRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := client.FetchShotChart(context.Background(), domain.ChartRequest{PlayerID: 1, Season: "2024-25"})

	rle, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("err = %v, want rate limit error", err)
	}
	if rle.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rle.StatusCode)
	}
	if rle.RetryAfter != 30*time.Second {
		t.Fatalf("retry after = %v, want 30s", rle.RetryAfter)
	}
	if rle.Provider != providerName {
		t.Fatalf("provider = %q", rle.Provider)
	}
}

func TestClientUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := client.FetchShotChart(context.Background(), domain.ChartRequest{PlayerID: 1, Season: "2024-25"}); err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestClientDefaults(t *testing.T) {
	client := NewClient(Config{})
	if client.baseURL != defaultBaseURL {
		t.Fatalf("baseURL = %q", client.baseURL)
	}
	if client.userAgent != defaultUserAgent {
		t.Fatalf("userAgent = %q", client.userAgent)
	}
	if client.httpClient == nil {
		t.Fatal("nil http client")
	}
}

func TestParseRetryAfter(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"15", 15 * time.Second},
		{" 5 ", 5 * time.Second},
		{"-3", 0},
		{"soon", 0},
	}
	for _, tc := range cases {
		if got := parseRetryAfter(tc.raw); got != tc.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
