// Package httpserver runs the API server with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, env-driven timeouts, and probe handlers
// for liveness and readiness endpoints.
package httpserver
