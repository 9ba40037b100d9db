// Package service exposes the compiler over HTTP.
//
// Routes:
//
//	POST /v1/compile   one document in the body, Go source in the response
//	GET  /v1/stream    WebSocket; one document per message, one JSON reply each
//	GET  /metrics      Prometheus metrics
//	GET  /healthz      liveness
//
// Query parameters on /v1/compile and /v1/stream override domgen.json
// options for that request or connection, e.g. ?templateMode=true.
package service
