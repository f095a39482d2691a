package domain

import "context"

// ServicePort defines the service contract for networks
type ServicePort interface {
	Find(ctx context.Context, in FindInput) (FindResult, error)
}
