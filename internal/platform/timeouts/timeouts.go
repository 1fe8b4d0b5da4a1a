// Package timeouts defines shared timeout constants used across services.
// Centralizing these values keeps server and client budgets discoverable.
package timeouts

import "time"

// APIRequest caps the time allowed for a single call from the web service to
// the interests API.
const APIRequest = 3 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
