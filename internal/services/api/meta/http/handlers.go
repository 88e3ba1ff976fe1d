// Package http serves liveness, readiness and build info
package http

import (
	"context"
	"net/http"
	"time"

	"addressbook/internal/core/version"
	"addressbook/internal/modkit/httpkit"

	"golang.org/x/sync/errgroup"
)

// Backend is one readiness dependency; a nil Ping marks the backend disabled
type Backend struct {
	Name string
	Ping func(context.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Backends    []Backend
	Timeout     time.Duration // per readiness round, 2s when zero
	Now         func() time.Time
}

const (
	statusOK      = "ok"
	statusFail    = "fail"
	statusSkipped = "skipped"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"addressbook-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck is the outcome of one backend ping
type ReadyCheck struct {
	Name    string `json:"name"              example:"pg"`
	Status  string `json:"status"            example:"ok"`
	Error   string `json:"error,omitempty"   example:"connection refused"`
	Elapsed int64  `json:"elapsed_ms"        example:"3"`
}

// ReadyResponse is ok unless a ping failed; skipped backends do not count
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse is the name and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"addressbook-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

type meta struct {
	Deps
}

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Timeout <= 0 {
		d.Timeout = 2 * time.Second
	}
	m := meta{d}
	httpkit.Get(r, "/health", m.health)
	r.Get("/ready", httpkit.Handle(m.ready))
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", m.service)
}

func (m meta) stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (m meta) health(*http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: m.ServiceName,
		Started: m.stamp(m.StartedAt),
		Now:     m.stamp(m.Now()),
	}, nil
}

// @Summary Readiness with a check per backend
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /meta/ready [get]
func (m meta) ready(r *http.Request) httpkit.Response {
	ctx, cancel := context.WithTimeout(r.Context(), m.Timeout)
	defer cancel()

	checks := make([]ReadyCheck, len(m.Backends))
	var g errgroup.Group
	for i, p := range m.Backends {
		g.Go(func() error {
			checks[i] = m.check(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	out := ReadyResponse{Status: statusOK, Checks: checks, Now: m.stamp(m.Now())}
	for _, c := range checks {
		if c.Status == statusFail {
			out.Status = statusFail
			return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}
		}
	}
	return httpkit.OK(out)
}

func (m meta) check(ctx context.Context, p Backend) ReadyCheck {
	if p.Ping == nil {
		return ReadyCheck{Name: p.Name, Status: statusSkipped}
	}
	at := m.Now()
	err := p.Ping(ctx)
	c := ReadyCheck{Name: p.Name, Status: statusOK, Elapsed: m.Now().Sub(at).Milliseconds()}
	if err != nil {
		c.Status, c.Error = statusFail, err.Error()
	}
	return c
}

// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (m meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    m.ServiceName,
		Started: m.stamp(m.StartedAt),
		Uptime:  int64(m.Now().Sub(m.StartedAt) / time.Second),
	}, nil
}
