package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	phttp "addressbook/internal/platform/net/http"
)

func profiled(enabled bool) phttp.Router {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r, "/debug", enabled)
	return r
}

func code(r phttp.Router, path string) int {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Code
}

func TestMountProfiler_Enabled(t *testing.T) {
	t.Parallel()

	r := profiled(true)
	assert.Equal(t, http.StatusOK, code(r, "/debug/pprof/"))
	assert.Equal(t, http.StatusOK, code(r, "/debug/pprof/cmdline"))
}

func TestMountProfiler_Disabled(t *testing.T) {
	t.Parallel()
	assert.Equal(t, http.StatusNotFound, code(profiled(false), "/debug/pprof/"))
}
