// Package timeouts holds the durations shared by the web and MCP processes.
package timeouts

import "time"

// HealthProbe bounds one `web -probe` run, dial included.
const HealthProbe = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown bounds graceful HTTP shutdown and telemetry flush.
const Shutdown = 5 * time.Second
