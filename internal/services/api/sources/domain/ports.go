package domain

import "context"

// ServicePort is what the http layer needs from the traffic source service
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (SearchResult, error)
}
