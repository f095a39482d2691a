// Package domain holds DTOs for traffic source search
package domain

import (
	"netmatch/internal/adapters/upstream"
	str "netmatch/internal/platform/strings"
)

// SearchInput is the query of a traffic source search
// Substring is a pointer so an empty value is accepted while an absent one is not
type SearchInput struct {
	Substring  *string `query:"substring" json:"substring" validate:"required" example:"push"`
	SourceType string  `query:"source_type" json:"source_type" validate:"omitempty,max=64" example:"push"`
}

// Query returns the raw substring, empty when absent
func (in SearchInput) Query() string { return str.Deref(in.Substring) }

// SearchResult lists the matching traffic sources exactly as the upstream returned them
type SearchResult struct {
	Sources []upstream.Entity `json:"sources" swaggertype:"array,object"`
	Count   int               `json:"count" example:"2"`
	Message string            `json:"message" example:"Found 2 traffic sources matching 'push': PushHouse, RichPush"`
}
