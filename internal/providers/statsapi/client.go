package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"nba-shotviz-service/internal/domain"
	"nba-shotviz-service/internal/providers"
)

// Config controls how the stats client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches shot charts from the stats API and maps them to domain
// models.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchShotChart retrieves one player-season shot chart plus the league
// baseline result set.
func (c *Client) FetchShotChart(ctx context.Context, req domain.ChartRequest) (domain.ShotChart, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return domain.ShotChart{}, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.ShotChart{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return domain.ShotChart{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ShotChart{}, fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload shotChartResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return domain.ShotChart{}, decodeErr
	}

	return mapShotChart(payload, req.Season), nil
}

func (c *Client) buildRequest(ctx context.Context, req domain.ChartRequest) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats/shotchartdetail", nil)
	if err != nil {
		return nil, err
	}

	seasonType := req.SeasonType
	if seasonType == "" {
		seasonType = defaultSeasonType
	}

	q := httpReq.URL.Query()
	q.Set("PlayerID", strconv.Itoa(req.PlayerID))
	q.Set("TeamID", "0")
	q.Set("Season", req.Season)
	q.Set("SeasonType", seasonType)
	q.Set("ContextMeasure", "FGA")
	q.Set("LeagueID", "00")
	q.Set("Period", "0")
	q.Set("LastNGames", "0")
	q.Set("Month", "0")
	q.Set("OpponentTeamID", "0")
	httpReq.URL.RawQuery = q.Encode()

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Referer", "https://www.nba.com/")
	httpReq.Header.Set("Accept", "application/json")

	return httpReq, nil
}
