// Package server exposes the search engine over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness and corpus size
//	GET  /api/v1/search?q=...      free-text question ("who knows ...?")
//	GET  /api/v1/search?phrase=... pre-extracted skill phrase
//	POST /api/v1/reload           rebuild the in-memory corpus
//	GET  /metrics                 Prometheus exposition
//
// Every JSON response uses the {status, message, data} envelope.
package server
