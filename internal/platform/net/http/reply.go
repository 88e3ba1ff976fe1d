package http

import (
	"encoding/json"
	"net/http"

	"addressbook/internal/platform/logger"
	pnet "addressbook/internal/platform/net"
	"addressbook/internal/platform/net/http/bind"
)

// Envelope is the body every endpoint answers with
type Envelope = pnet.Envelope

// Response is what a return-style handler hands back
// an error Body wins over Status; Status 0 means 200
type Response struct {
	Status int
	Body   any
	Header http.Header
}

// OK is a 200 around data
func OK(data any) Response { return Response{Status: http.StatusOK, Body: data} }

// NoContent is a bodyless 204
func NoContent() Response { return Response{Status: http.StatusNoContent} }

// Error lets err choose the status and envelope
func Error(err error) Response { return Response{Body: err} }

// WriteJSON encodes v as the whole response
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Debug().Err(err).Msg("response write")
	}
}

// Write sends resp wrapped in the envelope
func (resp Response) Write(w http.ResponseWriter, r *http.Request) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	id := pnet.RequestID(r.Context())

	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Failure(err, id)
		if status >= http.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(err).Int("status", status).
				Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		}
		WriteJSON(w, status, env)
		return
	}

	switch resp.Status {
	case http.StatusNoContent:
		w.WriteHeader(http.StatusNoContent)
	case 0:
		WriteJSON(w, http.StatusOK, pnet.Success(http.StatusOK, resp.Body, id))
	default:
		WriteJSON(w, resp.Status, pnet.Success(resp.Status, resp.Body, id))
	}
}

// Handle adapts a return-style handler
func Handle(fn func(*http.Request) Response) Handler {
	return func(w http.ResponseWriter, r *http.Request) { fn(r).Write(w, r) }
}

// Call runs fn without reading a body
// a Response result is written as is, anything else becomes a 200
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// Bind decodes and validates the body into T before fn runs
func Bind[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.JSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// GetJSON routes GET path to Call(h)
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// DeleteJSON routes DELETE path to Call(h)
func DeleteJSON(r Router, path string, h func(*http.Request) (any, error)) { r.Delete(path, Call(h)) }

// PostJSON routes POST path to Bind(h)
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, Bind(h))
}

// PutJSON routes PUT path to Bind(h)
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, Bind(h))
}
