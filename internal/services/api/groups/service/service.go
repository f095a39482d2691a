// Package service contains the group search workflow
package service

import (
	"context"
	"fmt"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/core/match"
	"netmatch/internal/core/normalize"
	"netmatch/internal/platform/logger"
	str "netmatch/internal/platform/strings"
	"netmatch/internal/services/api/groups/domain"
)

// DefaultGroupType is used when a search names no group type
const DefaultGroupType = "campaigns"

// Service defines the service contract for groups
type Service interface{ domain.ServicePort }

// Source lists groups of a type
type Source interface {
	Groups(ctx context.Context, groupType string) ([]upstream.Entity, error)
}

// Svc implements the Service interface
type Svc struct {
	src         Source
	defaultType string
}

// New creates a new groups service; an empty defaultType means DefaultGroupType
func New(src Source, defaultType string) *Svc {
	if src == nil {
		panic("groups.Service requires a non nil Source")
	}
	return &Svc{src: src, defaultType: str.OrDefault(defaultType, DefaultGroupType)}
}

// Search fetches the groups of the requested type and keeps those the cascade accepts
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	groupType := str.OrDefault(in.GroupType, s.defaultType)

	list, err := s.src.Groups(ctx, groupType)
	if err != nil {
		return domain.SearchResult{}, err
	}

	raw := in.Query()
	q := match.Prepare(raw)
	hits := match.Explain(q, list)

	log := logger.C(ctx)
	log.Debug().
		Str("substring", normalize.Sanitize(raw)).
		Str("decoded", q.Decoded).
		Str("translit", q.Translit).
		Str("script", string(q.Script)).
		Bool("decode_failed", q.DecodeFailed).
		Strs("tokens", q.Tokens).
		Str("group_type", groupType).
		Int("candidates", len(list)).
		Int("matched", len(hits)).
		Msg("group search")
	for _, h := range hits {
		log.Debug().Str("group", h.Item.Name()).Stringer("strategy", h.Strategy).Msg("group matched")
	}

	groups := match.Items(hits)
	return domain.SearchResult{
		Groups:  groups,
		Count:   len(groups),
		Message: fmt.Sprintf("Found %d groups containing '%s'", len(groups), raw),
	}, nil
}
