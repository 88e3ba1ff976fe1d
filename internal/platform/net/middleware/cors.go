package middleware

import (
	"net/http"

	chicors "github.com/go-chi/cors"
)

// CORSOptions selects who may call the API from a browser
// empty Methods or Headers fall back to what the contacts API needs
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{"Accept", "Content-Type", "X-Request-Id"}
)

// CORS is go-chi/cors configured from o
func CORS(o CORSOptions) Func {
	if len(o.AllowedMethods) == 0 {
		o.AllowedMethods = corsMethods
	}
	if len(o.AllowedHeaders) == 0 {
		o.AllowedHeaders = corsHeaders
	}
	if len(o.ExposedHeaders) == 0 {
		o.ExposedHeaders = []string{"X-Request-Id"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   o.AllowedMethods,
		AllowedHeaders:   o.AllowedHeaders,
		ExposedHeaders:   o.ExposedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
