// Package swaggerkit serves Swagger UI and a patched OAS3 doc.json
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "addressbook/internal/platform/net/http"
	docs "addressbook/internal/services/api/docs"
)

const (
	docsPath  = "/api/docs"
	serverURL = "/api/v1"
)

// SpecMutator edits the decoded spec before it is served
type SpecMutator func(spec map[string]any)

type mountCfg struct {
	readDoc  func() string
	mutators []SpecMutator
}

// Option configures Mount
type Option func(*mountCfg)

// TitleSuffix appends s to info.title, "" leaves it alone
func TitleSuffix(s string) Option {
	return Mutate(func(spec map[string]any) {
		if s == "" {
			return
		}
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + s
			}
		}
	})
}

// Mutate adds a spec mutator, run after the built-in patches in order
func Mutate(m SpecMutator) Option {
	return func(c *mountCfg) {
		if m != nil {
			c.mutators = append(c.mutators, m)
		}
	}
}

// withDoc swaps the generated doc source
func withDoc(read func() string) Option {
	return func(c *mountCfg) { c.readDoc = read }
}

// Mount serves the UI under /api/docs/ and the OpenAPI document at /api/docs/doc.json when enabled
func Mount(r phttp.Router, enabled bool, opts ...Option) {
	if !enabled {
		return
	}
	c := mountCfg{readDoc: docs.SwaggerInfo.ReadDoc}
	for _, o := range opts {
		o(&c)
	}

	r.Get(docsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(docsPath+"/doc.json", c.serveDoc)
	r.Handle(docsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL(docsPath+"/doc.json"),
	))
}

func (c mountCfg) serveDoc(w http.ResponseWriter, _ *http.Request) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(c.readDoc()), &spec); err != nil {
		http.Error(w, "spec parse error", http.StatusInternalServerError)
		return
	}

	asOAS30(spec)
	ensureErrorSchema(spec)
	addDefaultResponse(spec, "500", errorResponse(http.StatusInternalServerError, 1, "internal error"))
	addDefaultResponse(spec, "400", errorResponse(http.StatusBadRequest, 5, "first_name must not be blank"))
	for _, m := range c.mutators {
		m(spec)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(spec)
}

// asOAS30 pins the version the bundled UI renders and adds a servers entry
// swagger 2 and 3.1 docs are both relabelled 3.0.3
func asOAS30(spec map[string]any) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": serverURL}}
	}
}

func child(m map[string]any, key string) map[string]any {
	v, ok := m[key].(map[string]any)
	if !ok {
		v = map[string]any{}
		m[key] = v
	}
	return v
}

// ensureErrorSchema declares the error envelope once under components.schemas
func ensureErrorSchema(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorResponse(status, code int, msg string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        code,
					"error":       msg,
					"request_id":  "addressbook/abc-000001",
				},
			},
		},
	}
}

// addDefaultResponse gives every operation resp under code unless it documents its own
func addDefaultResponse(spec map[string]any, code string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		item, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range item {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[code]; !exists {
				responses[code] = resp
			}
		}
	}
}
