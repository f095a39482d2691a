package upstream

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Kind selects which entity list to fetch
type Kind string

const (
	// KindNetworks lists affiliate networks
	KindNetworks Kind = "networks"
	// KindGroups lists groups of a given type (campaigns, offers, ...)
	KindGroups Kind = "groups"
	// KindSources lists traffic sources
	KindSources Kind = "traffic sources"
)

// path returns the collection path of k
func (k Kind) path() string {
	switch k {
	case KindNetworks:
		return "/affiliate_networks"
	case KindGroups:
		return "/groups"
	case KindSources:
		return "/traffic_sources"
	default:
		return ""
	}
}

// Entity is one upstream record kept exactly as received
// Only name and id are interpreted; every other field passes through untouched
type Entity struct {
	raw  json.RawMessage
	name string
	id   json.RawMessage
}

// NewEntity builds an Entity from a JSON object
func NewEntity(raw []byte) (Entity, error) {
	var e Entity
	if err := e.UnmarshalJSON(raw); err != nil {
		return Entity{}, err
	}
	return e, nil
}

// Name returns the display name, empty when the record has none
func (e Entity) Name() string { return e.name }

// ID returns the id exactly as the upstream encoded it, nil when absent
func (e Entity) ID() json.RawMessage { return e.id }

// IDString renders the id for humans: strings unquoted, numbers as written
func (e Entity) IDString() string {
	if len(e.id) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.id, &s); err == nil {
		return s
	}
	return string(e.id)
}

// Raw returns the original JSON object
func (e Entity) Raw() json.RawMessage { return e.raw }

// MarshalJSON re-emits the record verbatim
func (e Entity) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("null"), nil
	}
	return e.raw, nil
}

// UnmarshalJSON keeps the raw object and picks out name and id
func (e *Entity) UnmarshalJSON(b []byte) error {
	var head struct {
		Name json.RawMessage `json:"name"`
		ID   json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	e.raw = append(json.RawMessage(nil), bytes.TrimSpace(b)...)
	e.name = nameOf(head.Name)
	e.id = nil
	if len(head.ID) > 0 && !bytes.Equal(head.ID, []byte("null")) {
		e.id = append(json.RawMessage(nil), head.ID...)
	}
	return nil
}

// nameOf decodes a string name; other JSON values are kept as their literal text
func nameOf(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// Names projects the display names of list in order
func Names(list []Entity) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Name())
	}
	return out
}
