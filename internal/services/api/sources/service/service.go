// Package service contains the traffic source search workflow
package service

import (
	"context"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/core/match"
	"netmatch/internal/core/normalize"
	"netmatch/internal/platform/logger"
	str "netmatch/internal/platform/strings"
	"netmatch/internal/services/api/sources/domain"
)

// Service defines the service contract for traffic sources
type Service interface{ domain.ServicePort }

// Source lists traffic sources, every type when sourceType is empty
type Source interface {
	Sources(ctx context.Context, sourceType string) ([]upstream.Entity, error)
}

// Svc implements the Service interface
type Svc struct{ src Source }

// New creates a new traffic source service
func New(src Source) *Svc {
	if src == nil {
		panic("sources.Service requires a non nil Source")
	}
	return &Svc{src: src}
}

// Search fetches traffic sources and keeps those the cascade accepts
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	list, err := s.src.Sources(ctx, str.OrDefault(in.SourceType, ""))
	if err != nil {
		return domain.SearchResult{}, err
	}

	q := match.Prepare(in.Query())
	hits := match.Explain(q, list)

	log := logger.C(ctx)
	log.Debug().
		Str("substring", normalize.Sanitize(q.Raw)).
		Str("decoded", q.Decoded).
		Str("translit", q.Translit).
		Str("script", string(q.Script)).
		Bool("decode_failed", q.DecodeFailed).
		Str("source_type", in.SourceType).
		Int("candidates", len(list)).
		Int("matched", len(hits)).
		Msg("traffic source search")
	for _, h := range hits {
		log.Debug().Str("source", h.Item.Name()).Stringer("strategy", h.Strategy).Msg("traffic source matched")
	}

	sources := match.Items(hits)
	return domain.SearchResult{
		Sources: sources,
		Count:   len(sources),
		Message: domain.Summary(q.Decoded, upstream.Names(sources)),
	}, nil
}
