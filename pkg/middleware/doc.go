// Package middleware provides net/http middleware for the daisy preview
// server.
//
//   - RequestID assigns an id per request (X-Request-ID).
//   - AccessLog writes one zerolog line per request.
//   - Metrics records Prometheus request, render and live reload metrics.
//   - OpenTelemetry traces every request with the global tracer provider.
//
// All of them are plain func(http.Handler) http.Handler values and compose
// with chi:
//
//	r := chi.NewRouter()
//	r.Use(
//	    middleware.RequestID,
//	    middleware.AccessLog(log),
//	    metrics.Handler,
//	    middleware.OpenTelemetry(),
//	)
//
// Route labels and span names use the matched chi pattern
// ("/components/{name}") rather than the raw path.
package middleware
