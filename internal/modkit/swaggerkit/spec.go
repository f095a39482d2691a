// Package swaggerkit assembles the OpenAPI document from what modules register and serves it with Swagger UI
package swaggerkit

import (
	"encoding/json"
	"strings"
	"sync"

	"netmatch/internal/core/version"
)

// SpecMutator edits the document before it is served
type SpecMutator func(spec map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register queues m; nil is ignored
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops every registered mutator
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Apply runs the registered mutators over spec in registration order
func Apply(spec map[string]any) {
	mu.RLock()
	defer mu.RUnlock()
	for _, m := range mutators {
		m(spec)
	}
}

// Operation documents method on path, relative to the /api/v1 server url
// op is frozen as JSON so every served document gets its own copy
func Operation(method, path string, op map[string]any) SpecMutator {
	frozen, err := json.Marshal(op)
	if err != nil {
		panic("swaggerkit: operation for " + path + " is not JSON encodable: " + err.Error())
	}
	method = strings.ToLower(method)
	return func(spec map[string]any) {
		var fresh map[string]any
		_ = json.Unmarshal(frozen, &fresh)
		child(child(spec, "paths"), path)[method] = fresh
	}
}

// JSONBody describes an application/json payload
func JSONBody(description string, schema map[string]any) map[string]any {
	return map[string]any{
		"description": description,
		"content":     map[string]any{"application/json": map[string]any{"schema": schema}},
	}
}

// Document builds the OpenAPI 3.0 document served at doc.json
func Document() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "Network Name Matcher API",
			"version":     version.Info().Version,
			"description": "Fuzzy lookup over affiliate networks, groups and traffic sources",
		},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   map[string]any{},
	}
	Apply(spec)

	child(child(spec, "components"), "schemas")["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Envelope of every failed request",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
	for status, ex := range errorExamples {
		for _, node := range child(spec, "paths") {
			ops, _ := node.(map[string]any)
			for _, op := range ops {
				if op, ok := op.(map[string]any); ok {
					if _, set := child(op, "responses")[status]; !set {
						child(op, "responses")[status] = errorResponse(ex)
					}
				}
			}
		}
	}
	return spec
}

type errorExample struct {
	status int
	desc   string
	code   int
	msg    string
}

// every operation documents these unless it already says otherwise
var errorExamples = map[string]errorExample{
	"400": {status: 400, desc: "Bad Request", code: 6, msg: "substring is a required field"},
	"500": {status: 500, desc: "Internal Server Error", code: 1, msg: "panic recovered"},
	"502": {status: 502, desc: "Bad Gateway", code: 9, msg: `failed to fetch networks: {"error":"Invalid API key"}`},
}

func errorResponse(ex errorExample) map[string]any {
	resp := JSONBody(ex.desc, map[string]any{"$ref": "#/components/schemas/ErrorResponse"})
	resp["content"].(map[string]any)["application/json"].(map[string]any)["example"] = map[string]any{
		"status_code": ex.status,
		"status":      ex.desc,
		"code":        ex.code,
		"error":       ex.msg,
		"request_id":  "579f33bf50b1/abc-000001",
	}
	return resp
}

// child returns m[key] as a map, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
