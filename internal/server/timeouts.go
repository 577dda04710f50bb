package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Chart builds for multi-season requests can take a while upstream.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
