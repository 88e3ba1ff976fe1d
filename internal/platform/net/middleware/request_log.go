package middleware

import (
	"net/http"

	pnet "addressbook/internal/platform/net"
)

// RequestLog copies the chi request id onto the logger context
// mount it after RequestID so logger.C(ctx) carries request_id
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := pnet.RequestID(r.Context()); id != "" {
			r = r.WithContext(pnet.WithRequest(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
