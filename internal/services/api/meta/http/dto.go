package http

import "netmatch/internal/core/slang"

// WelcomeResponse is served at the API root
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to Network Name Matcher API"`
}

// HealthResponse answers /meta/health; it never touches the upstream
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"netmatch-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Now     string `json:"now" example:"2026-10-19T13:05:00Z"`
}

// Check is one dependency probe result
// Status is ok, fail or skipped
type Check struct {
	Name    string `json:"name" example:"upstream"`
	Status  string `json:"status" example:"ok"`
	Breaker string `json:"breaker,omitempty" example:"closed"`
	Error   string `json:"error,omitempty" example:"failed to fetch networks: upstream unreachable"`
}

// ReadyResponse rolls the checks up into ok, degraded or fail
type ReadyResponse struct {
	Status string  `json:"status" example:"ok"`
	Checks []Check `json:"checks"`
	Now    string  `json:"now" example:"2026-10-19T13:05:00Z"`
}

// ServiceResponse is name and uptime in whole seconds
type ServiceResponse struct {
	Name    string `json:"name" example:"netmatch-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime" example:"300"`
}

// MatcherResponse exposes what the search endpoints match with
type MatcherResponse struct {
	Threshold   int           `json:"threshold" example:"50"`
	Slang       []slang.Entry `json:"slang"`
	TranslitMap int           `json:"translit_map" example:"66"`
}
