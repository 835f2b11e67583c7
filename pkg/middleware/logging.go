package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// AccessLog writes one structured log line per request. Server errors log
// at error level and client errors at warn.
func AccessLog(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newResponseRecorder(w)

			next.ServeHTTP(rec, r)

			status := rec.Status()
			var event *zerolog.Event
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", rec.bytes).
				Dur("duration", time.Since(start))
			if id := GetRequestID(r.Context()); id != "" {
				event.Str("request_id", id)
			}
			event.Msg("request")
		})
	}
}
