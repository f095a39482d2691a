// Package http provides http transport for network lookups
package http

import (
	stdhttp "net/http"

	"netmatch/internal/modkit/httpkit"
	"netmatch/internal/modkit/swaggerkit"
	"netmatch/internal/services/api/networks/domain"
)

// Register mounts networks endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.FindInput](r, "/find", h.find)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /networks/find Networks networksFind
// @Summary Best fuzzy match for a network name
// @Description Transliterates the name to latin and scores it against every affiliate network
// @Tags Networks
// @Accept json
// @Produce json
// @Param payload body domain.FindInput true "Name to look up"
// @Success 200 {object} domain.FindResult "match or not found"
// @Failure 400 {object} httpkit.Envelope "validation error"
// @Failure 502 {object} httpkit.Envelope "upstream fetch failed"
// @Router /networks/find [post]
func (h *handlers) find(r *stdhttp.Request, in domain.FindInput) (any, error) {
	return h.svc.Find(r.Context(), in)
}

// Docs returns the OpenAPI operations served by this package
func Docs() []swaggerkit.SpecMutator {
	return []swaggerkit.SpecMutator{
		swaggerkit.Operation("POST", "/networks/find", map[string]any{
			"summary":     "Best fuzzy match for a network name",
			"tags":        []string{"Networks"},
			"operationId": "networksFind",
			"requestBody": map[string]any{
				"required": true,
				"content": map[string]any{"application/json": map[string]any{"schema": map[string]any{
					"type":       "object",
					"required":   []string{"name"},
					"properties": map[string]any{"name": map[string]any{"type": "string", "example": "Гугл Адс"}},
				}}},
			},
			"responses": map[string]any{
				"200": swaggerkit.JSONBody("match or not found", map[string]any{
					"type": "object",
					"properties": map[string]any{
						"match":      map[string]any{"type": "string", "nullable": true},
						"similarity": map[string]any{"type": "integer", "nullable": true},
						"network_id": map[string]any{"nullable": true},
						"message":    map[string]any{"type": "string"},
					},
				}),
			},
		}),
	}
}
