// Package service contains the network lookup workflow
package service

import (
	"context"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/core/fuzzy"
	"netmatch/internal/core/normalize"
	"netmatch/internal/platform/logger"
	"netmatch/internal/services/api/networks/domain"
)

// Service defines the service contract for networks
type Service interface{ domain.ServicePort }

// Source lists affiliate networks
type Source interface {
	Networks(ctx context.Context) ([]upstream.Entity, error)
}

// Svc implements the Service interface
type Svc struct {
	src     Source
	matcher *fuzzy.Matcher
}

// New creates a new networks service
func New(src Source, m *fuzzy.Matcher) *Svc {
	if src == nil {
		panic("networks.Service requires a non nil Source")
	}
	if m == nil {
		m = fuzzy.New(fuzzy.DefaultThreshold)
	}
	return &Svc{src: src, matcher: m}
}

// Find fetches every network and returns the single best fuzzy match
// a query below the threshold is a normal not found result, not an error
func (s *Svc) Find(ctx context.Context, in domain.FindInput) (domain.FindResult, error) {
	list, err := s.src.Networks(ctx)
	if err != nil {
		return domain.FindResult{}, err
	}

	log := logger.C(ctx)
	top, ok := s.matcher.Top(in.Name, upstream.Names(list))
	if !ok || top.Score < s.matcher.Threshold {
		log.Debug().
			Str("query", normalize.Sanitize(in.Name)).
			Int("candidates", len(list)).
			Int("best_score", top.Score).
			Int("threshold", s.matcher.Threshold).
			Msg("network not matched")
		return domain.NotFound(), nil
	}

	hit := list[top.Index]
	log.Debug().
		Str("query", normalize.Sanitize(in.Name)).
		Str("match", top.Name).
		Int("score", top.Score).
		Str("network_id", hit.IDString()).
		Msg("network matched")
	return domain.Found(top.Name, top.Score, hit.ID()), nil
}
