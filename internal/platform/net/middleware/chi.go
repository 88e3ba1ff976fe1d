// Package middleware adapts chi middleware and adds the zerolog access log and JSON panic recovery
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Func is a net/http middleware
type Func = func(http.Handler) http.Handler

// RequestID reuses X-Request-Id from the client or mints one
func RequestID() Func { return chimw.RequestID }

// RealIP trusts X-Real-IP and X-Forwarded-For for RemoteAddr
func RealIP() Func { return chimw.RealIP }

// NoCache forbids client and proxy caching of API replies
func NoCache() Func { return chimw.NoCache }

// StripSlashes routes /contacts/ like /contacts
func StripSlashes() Func { return chimw.StripSlashes }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Func { return chimw.Timeout(d) }

// Heartbeat answers GET and HEAD on path with 200 before routing
func Heartbeat(path string) Func { return chimw.Heartbeat(path) }

// Compress encodes bodies for clients that accept gzip or deflate
func Compress(level int) Func {
	return chimw.NewCompressor(level).Handler
}
