// Package httpkit is the http surface modules build handlers against
// modules import this instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "addressbook/internal/platform/net/http"
)

type (
	// Envelope is the JSON body every endpoint answers with
	Envelope = phttp.Envelope

	// Response is what return-style handlers produce
	Response = phttp.Response

	// Handler is the platform handler func
	Handler = phttp.Handler

	// Router is the routing seam
	Router = phttp.Router
)

// OK is a 200 with data
func OK(data any) Response { return phttp.OK(data) }

// NoContent is a bodyless 204
func NoContent() Response { return phttp.NoContent() }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON binds and validates a body into T before fn runs
// returning a Response from fn writes it untouched
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.Bind(fn) }

// Call adapts a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.Call(fn) }

// Handle adapts a Response-returning func
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Get mounts a bodyless JSON handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// Delete mounts a bodyless JSON handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) { phttp.DeleteJSON(r, path, h) }

// PostJSON mounts a bound JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// PutJSON mounts a bound JSON handler under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PutJSON(r, path, h)
}
