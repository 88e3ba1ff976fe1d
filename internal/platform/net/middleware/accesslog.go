package middleware

import (
	"net/http"
	"time"

	"addressbook/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions tunes the access log
type AccessLogOptions struct {
	// Slow promotes requests at or above it to warn, 0 never promotes
	Slow time.Duration
}

// AccessLogZerolog writes one line per request on the request scoped logger
func AccessLogZerolog(opt AccessLogOptions) Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			began := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(began)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			l := logger.C(r.Context())
			ev := l.Info()
			switch {
			case status >= http.StatusInternalServerError:
				ev = l.Error()
			case opt.Slow > 0 && took >= opt.Slow:
				ev = l.Warn().Bool("slow", true)
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took).
				Str("remote", r.RemoteAddr).
				Msg("http request")
		})
	}
}
