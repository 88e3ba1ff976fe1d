package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"addressbook/internal/platform/config"
	"addressbook/internal/platform/net/middleware"
)

// StackOptions tunes the per-scope middleware stack
type StackOptions struct {
	// Slow requests log at warn, 0 disables
	Slow time.Duration
	// Timeout cancels the request context, 0 disables
	Timeout time.Duration
	// Origins allowed by CORS, empty allows none
	Origins []string
}

// StackFromConfig reads SLOW_REQUEST, REQUEST_TIMEOUT and CORS_ORIGINS (comma separated)
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Slow:    cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		Timeout: cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Origins: cfg.MayCSV("CORS_ORIGINS", nil),
	}
}

// Stack returns the middleware every API scope runs, outermost first
// RequestID precedes RequestLog so logger.C(ctx) carries the id
func Stack(o StackOptions) []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLog,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
	}
	if o.Timeout > 0 {
		mws = append(mws, middleware.Timeout(o.Timeout))
	}
	return mws
}
