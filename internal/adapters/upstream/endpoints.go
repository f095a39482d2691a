package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	perr "netmatch/internal/platform/errors"
)

// Fetch lists every entity of kind, optionally narrowed by the upstream type filter
// A non 200 reply becomes an upstream error carrying the reply body as detail
func (c *Client) Fetch(ctx context.Context, kind Kind, typeFilter string) ([]Entity, error) {
	p := kind.path()
	if p == "" {
		return nil, perr.InvalidArgf("unknown entity kind %q", kind)
	}
	if t := strings.TrimSpace(typeFilter); t != "" && kind != KindNetworks {
		p += "?" + url.Values{"type": {t}}.Encode()
	}

	status, body, err := c.Do(ctx, string(kind), p)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		c.log.Warn().Str("kind", string(kind)).Int("status", status).Msg("upstream returned non success status")
		return nil, perr.Upstreamf("failed to fetch %s: %s", kind, string(body))
	}

	var out []Entity
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, perr.WrapUpstream(err, "failed to fetch %s: malformed response", kind)
	}
	if out == nil {
		out = []Entity{}
	}
	c.log.Debug().Str("kind", string(kind)).Int("count", len(out)).Msg("upstream entities fetched")
	return out, nil
}

// Networks lists affiliate networks
func (c *Client) Networks(ctx context.Context) ([]Entity, error) {
	return c.Fetch(ctx, KindNetworks, "")
}

// Groups lists groups of groupType
func (c *Client) Groups(ctx context.Context, groupType string) ([]Entity, error) {
	return c.Fetch(ctx, KindGroups, groupType)
}

// Sources lists traffic sources, all of them when sourceType is empty
func (c *Client) Sources(ctx context.Context, sourceType string) ([]Entity, error) {
	return c.Fetch(ctx, KindSources, sourceType)
}

// Ping checks the API answers an authenticated list call
func (c *Client) Ping(ctx context.Context) error {
	status, body, err := c.Do(ctx, "ping", KindNetworks.path())
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return perr.Upstreamf("upstream ping failed with status %d: %s", status, string(body))
	}
	return nil
}
