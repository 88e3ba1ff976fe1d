package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "addressbook/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var started = time.Date(2026, 10, 1, 13, 0, 0, 0, time.UTC)

func ok(context.Context) error { return nil }

func down(context.Context) error { return errors.New("refused") }

func serve(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	if d.Now == nil {
		d.Now = func() time.Time { return started.Add(5 * time.Minute) }
	}
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return rec.Code
}

func TestHealth(t *testing.T) {
	var got HealthResponse
	code := serve(t, Deps{ServiceName: "addressbook-api", StartedAt: started}, "/health", &got)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, got.OK)
	assert.Equal(t, "addressbook-api", got.Service)
	assert.Equal(t, "2026-10-01T13:00:00Z", got.Started)
	assert.Equal(t, "2026-10-01T13:05:00Z", got.Now)
}

func TestReady(t *testing.T) {
	cases := []struct {
		name     string
		backends []Backend
		code     int
		want     string
		checks   []string
	}{
		{"all ok", []Backend{{"pg", ok}, {"ch", ok}}, http.StatusOK, "ok", []string{"ok", "ok"}},
		{"journal disabled", []Backend{{"pg", ok}, {"ch", nil}}, http.StatusOK, "ok", []string{"ok", "skipped"}},
		{"pg down", []Backend{{"pg", down}, {"ch", ok}}, http.StatusServiceUnavailable, "fail", []string{"fail", "ok"}},
		{"no backends", nil, http.StatusOK, "ok", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got ReadyResponse
			code := serve(t, Deps{Backends: tc.backends}, "/ready", &got)

			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.want, got.Status)
			statuses := []string{}
			for i, c := range got.Checks {
				assert.Equal(t, tc.backends[i].Name, c.Name)
				statuses = append(statuses, c.Status)
			}
			assert.Equal(t, tc.checks, statuses)
		})
	}
}

func TestReady_ReportsPingError(t *testing.T) {
	var got ReadyResponse
	serve(t, Deps{Backends: []Backend{{"pg", down}}}, "/ready", &got)

	require.Len(t, got.Checks, 1)
	assert.Equal(t, "refused", got.Checks[0].Error)
}

func TestReady_BoundsSlowBackend(t *testing.T) {
	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	var got ReadyResponse
	code := serve(t, Deps{Backends: []Backend{{"pg", slow}}, Timeout: 20 * time.Millisecond, Now: time.Now}, "/ready", &got)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, context.DeadlineExceeded.Error(), got.Checks[0].Error)
}

func TestVersion(t *testing.T) {
	var got map[string]string
	serve(t, Deps{}, "/version", &got)
	assert.Equal(t, "addressbook-api", got["service"])
	assert.NotEmpty(t, got["version"])
}

func TestServiceUptime(t *testing.T) {
	var got ServiceResponse
	serve(t, Deps{ServiceName: "x", StartedAt: started}, "/service", &got)
	assert.Equal(t, int64(300), got.Uptime)
	assert.Equal(t, "x", got.Name)
}
