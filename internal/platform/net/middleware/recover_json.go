package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "addressbook/internal/platform/errors"
	"addressbook/internal/platform/logger"
	pnet "addressbook/internal/platform/net"
)

// RecoverJSON turns a handler panic into the 500 envelope with code panic
// http.ErrAbortHandler keeps propagating so net/http drops the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			switch v {
			case nil:
				return
			case http.ErrAbortHandler:
				panic(v)
			}

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			id := pnet.RequestID(r.Context())
			if id != "" {
				w.Header().Set("X-Request-Id", id)
			}
			status, env := pnet.Failure(perr.PanicErrf("panic recovered"), id)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(env)
		}()
		next.ServeHTTP(w, r)
	})
}
