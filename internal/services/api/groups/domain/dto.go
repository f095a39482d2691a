// Package domain holds DTOs for group search http and service contracts
package domain

import (
	"netmatch/internal/adapters/upstream"
	str "netmatch/internal/platform/strings"
)

// SearchInput is the query of a group search
// Substring is a pointer so an empty value is accepted while an absent one is not
type SearchInput struct {
	Substring *string `query:"substring" json:"substring" validate:"required" example:"изи"`
	GroupType string  `query:"group_type" json:"group_type" validate:"omitempty,max=64" example:"campaigns"`
}

// Query returns the raw substring, empty when absent
func (in SearchInput) Query() string { return str.Deref(in.Substring) }

// SearchResult lists the matching groups exactly as the upstream returned them
type SearchResult struct {
	Groups  []upstream.Entity `json:"groups" swaggertype:"array,object"`
	Count   int               `json:"count" example:"1"`
	Message string            `json:"message" example:"Found 1 groups containing 'изи'"`
}
