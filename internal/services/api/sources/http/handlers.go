// Package http provides http transport for traffic source search
package http

import (
	stdhttp "net/http"

	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/modkit/swaggerkit"
	"netmatch/internal/services/api/sources/domain"
)

// Register mounts traffic source endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/search", h.search)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /sources/search Sources sourcesSearch
// @Summary Traffic sources whose name matches a substring
// @Tags Sources
// @Produce json
// @Param substring query string true "Substring, percent encoded with + as space"
// @Param source_type query string false "Upstream source type, every type when empty"
// @Success 200 {object} domain.SearchResult "ok"
// @Failure 400 {object} httpkit.Envelope "substring missing"
// @Failure 502 {object} httpkit.Envelope "upstream fetch failed"
// @Router /sources/search [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// Docs returns the OpenAPI operations served by this package
func Docs() []swaggerkit.SpecMutator {
	return []swaggerkit.SpecMutator{
		swaggerkit.Operation("GET", "/sources/search", map[string]any{
			"summary":     "Traffic sources whose name matches a substring",
			"tags":        []string{"Sources"},
			"operationId": "sourcesSearch",
			"parameters": []any{
				map[string]any{"name": "substring", "in": "query", "required": true, "schema": map[string]any{"type": "string"}},
				map[string]any{"name": "source_type", "in": "query", "schema": map[string]any{"type": "string"}},
			},
			"responses": map[string]any{
				"200": swaggerkit.JSONBody("ok", map[string]any{
					"type": "object",
					"properties": map[string]any{
						"sources": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
						"count":   map[string]any{"type": "integer"},
						"message": map[string]any{"type": "string"},
					},
				}),
			},
		}),
	}
}
