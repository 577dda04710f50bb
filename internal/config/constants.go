package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envAdminToken   = "ADMIN_TOKEN"
	envCacheTTL     = "SHOTCHART_CACHE_TTL"
	envRedisAddr    = "REDIS_ADDR"
	envRedisDB      = "REDIS_DB"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envStatsBaseURL     = "STATS_API_BASE_URL"
	envStatsTimeout     = "STATS_API_TIMEOUT"
	envStatsUserAgent   = "STATS_API_USER_AGENT"
	envStatsMinInterval = "STATS_API_MIN_INTERVAL"
	envStatsRetries     = "STATS_API_MAX_RETRIES"

	envBinFt         = "CHART_BIN_FT"
	envVLim          = "CHART_VLIM"
	envSampleCap     = "CHART_SAMPLE_CAP"
	envReleaseHeight = "CHART_RELEASE_HEIGHT_FT"
	envArcSamples    = "CHART_ARC_SAMPLES"
	envHalo          = "CHART_BOUNDARY_HALO"

	defaultPort        = "4000"
	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
	// Shot logs for a finished game day do not change; keep them warm.
	defaultCacheTTL = 6 * Duration(time.Hour)

	defaultBinFt         = 2.0
	defaultVLim          = 0.15
	defaultSampleCap     = 1000
	defaultReleaseHeight = 0.0
	defaultArcSamples    = 32
	defaultHalo          = true
)
