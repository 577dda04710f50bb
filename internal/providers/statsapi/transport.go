package statsapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// httpDoer lets tests substitute the HTTP client.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

func resolveUserAgent(userAgent string) string {
	if userAgent == "" {
		return defaultUserAgent
	}
	return userAgent
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client == nil {
		return &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// parseRetryAfter reads a Retry-After header as delay seconds. Absent or
// malformed values yield zero, letting the caller fall back to its own
// backoff.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
