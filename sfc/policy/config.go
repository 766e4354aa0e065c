// Copyright 2026 The sfcgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package policy

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

var (
	// ErrNotFound indicates that the policy file does not exist.
	ErrNotFound = errors.New("policy not found")
	// ErrParse indicates a malformed or invalid policy source.
	ErrParse = errors.New("invalid policy")
)

// MaxPrefixLen is the largest valid prefix length of a routing identifier.
const MaxPrefixLen = 64

// Address is the listen address of the SFC service.
type Address struct {
	Host string
	Port uint16
}

// TLS contains the paths to the PEM files of the SFC service. Root is
// optional.
type TLS struct {
	Enabled bool
	Key     string
	Cert    string
	Root    string
}

// Config is an immutable policy snapshot. It must not be modified once it is
// published through a Store.
type Config struct {
	Deny  FilterSet
	Allow FilterSet
	Delay FilterSet
	// DelayDuration is the wait applied to requests matching the delay list.
	DelayDuration time.Duration

	CreateEnabled bool
	DeleteEnabled bool
	QueryEnabled  bool

	Address Address
	TLS     TLS
}

// Default returns the policy of an empty source: all methods enabled, no
// filter list active.
func Default() *Config {
	return &Config{
		CreateEnabled: true,
		DeleteEnabled: true,
		QueryEnabled:  true,
	}
}

// Parse parses a JSON policy source. Unknown keys are ignored and missing
// keys take their default. An empty source or a JSON null yields the default
// policy. All errors wrap ErrParse.
func Parse(raw []byte) (*Config, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Default(), nil
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, serrors.JoinNoStack(ErrParse, err)
	}
	cfg, err := doc.config()
	if err != nil {
		return nil, serrors.JoinNoStack(ErrParse, err)
	}
	return cfg, nil
}

// MarshalJSON encodes the snapshot in the source format. Parsing the result
// yields an equal snapshot.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(newDocument(c))
}

// UnmarshalJSON parses raw like Parse.
func (c *Config) UnmarshalJSON(raw []byte) error {
	cfg, err := Parse(raw)
	if err != nil {
		return err
	}
	*c = *cfg
	return nil
}

// document is the JSON layout of the policy source. Pointers distinguish
// missing keys from zero values.
type document struct {
	Address   *addressDoc  `json:"address,omitempty"`
	Requests  *requestsDoc `json:"requests,omitempty"`
	SfcFilter *sfcFilter   `json:"sfcfilter,omitempty"`
	SSL       *sslDoc      `json:"ssl,omitempty"`
}

type addressDoc struct {
	Host *string `json:"host,omitempty"`
	Port *uint16 `json:"port,omitempty"`
}

type requestsDoc struct {
	Create *bool `json:"create,omitempty"`
	Delete *bool `json:"delete,omitempty"`
	Query  *bool `json:"query,omitempty"`
}

type sfcFilter struct {
	Deny  *filterSpec `json:"deny,omitempty"`
	Allow *filterSpec `json:"allow,omitempty"`
	Delay *delaySpec  `json:"delay,omitempty"`
}

type filterSpec struct {
	Tunnel  *tunnelSpec  `json:"ghost_tunnel_identifier,omitempty"`
	Routing *routingSpec `json:"ghost_routing_identifier,omitempty"`
}

type delaySpec struct {
	filterSpec
	Seconds *int64 `json:"seconds,omitempty"`
}

type tunnelSpec struct {
	Labels []tunnelEntry `json:"ghostlabel"`
}

type tunnelEntry struct {
	TerminalLabel *uint64 `json:"terminal_label"`
	ServiceLabel  *uint64 `json:"service_label"`
}

type routingSpec struct {
	Prefixes []prefixEntry `json:"destination_label_prefix"`
}

type prefixEntry struct {
	Value     *uint64 `json:"value"`
	PrefixLen *uint32 `json:"prefix_len"`
}

type sslDoc struct {
	Enable *bool  `json:"enable,omitempty"`
	Key    string `json:"key,omitempty"`
	Cert   string `json:"cert,omitempty"`
	Root   string `json:"root,omitempty"`
}

func (d document) config() (*Config, error) {
	cfg := Default()
	if a := d.Address; a != nil {
		if a.Host != nil {
			cfg.Address.Host = *a.Host
		}
		if a.Port != nil {
			cfg.Address.Port = *a.Port
		}
	}
	if r := d.Requests; r != nil {
		setBool(&cfg.CreateEnabled, r.Create)
		setBool(&cfg.DeleteEnabled, r.Delete)
		setBool(&cfg.QueryEnabled, r.Query)
	}
	if f := d.SfcFilter; f != nil {
		var err error
		if cfg.Deny, err = f.Deny.filterSet(); err != nil {
			return nil, serrors.Wrap("parsing deny list", err)
		}
		if cfg.Allow, err = f.Allow.filterSet(); err != nil {
			return nil, serrors.Wrap("parsing allow list", err)
		}
		if f.Delay != nil {
			if cfg.Delay, err = f.Delay.filterSet(); err != nil {
				return nil, serrors.Wrap("parsing delay list", err)
			}
			if cfg.DelayDuration, err = delayDuration(f.Delay.Seconds); err != nil {
				return nil, err
			}
		}
	}
	if s := d.SSL; s != nil {
		setBool(&cfg.TLS.Enabled, s.Enable)
		cfg.TLS.Key, cfg.TLS.Cert, cfg.TLS.Root = s.Key, s.Cert, s.Root
		if cfg.TLS.Enabled && (cfg.TLS.Key == "" || cfg.TLS.Cert == "") {
			return nil, serrors.New("ssl enabled without key and cert",
				"key", cfg.TLS.Key, "cert", cfg.TLS.Cert)
		}
	}
	return cfg, nil
}

func (s *filterSpec) filterSet() (FilterSet, error) {
	if s == nil {
		return FilterSet{}, nil
	}
	var ids []Identifier
	if s.Tunnel != nil {
		for i, e := range s.Tunnel.Labels {
			if e.TerminalLabel == nil || e.ServiceLabel == nil {
				return FilterSet{}, serrors.New("incomplete tunnel identifier", "index", i)
			}
			ids = append(ids, TunnelIdentifier{
				TerminalLabel: *e.TerminalLabel,
				ServiceLabel:  *e.ServiceLabel,
			})
		}
	}
	if s.Routing != nil {
		for i, e := range s.Routing.Prefixes {
			if e.Value == nil || e.PrefixLen == nil {
				return FilterSet{}, serrors.New("incomplete routing identifier", "index", i)
			}
			if *e.PrefixLen > MaxPrefixLen {
				return FilterSet{}, serrors.New("prefix length out of range",
					"index", i, "prefix_len", *e.PrefixLen, "max", MaxPrefixLen)
			}
			ids = append(ids, RoutingIdentifier{
				DestinationPrefix: *e.Value,
				PrefixLen:         *e.PrefixLen,
			})
		}
	}
	return NewFilterSet(ids...), nil
}

func delayDuration(seconds *int64) (time.Duration, error) {
	if seconds == nil {
		return 0, nil
	}
	if *seconds < 0 || *seconds > int64(math.MaxInt64/time.Second) {
		return 0, serrors.New("delay seconds out of range", "seconds", *seconds)
	}
	return time.Duration(*seconds) * time.Second, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func newDocument(c *Config) document {
	secs := int64(c.DelayDuration / time.Second)
	delay := &delaySpec{filterSpec: *newFilterSpec(c.Delay), Seconds: &secs}
	return document{
		Address: &addressDoc{Host: &c.Address.Host, Port: &c.Address.Port},
		Requests: &requestsDoc{
			Create: &c.CreateEnabled,
			Delete: &c.DeleteEnabled,
			Query:  &c.QueryEnabled,
		},
		SfcFilter: &sfcFilter{
			Deny:  newFilterSpec(c.Deny),
			Allow: newFilterSpec(c.Allow),
			Delay: delay,
		},
		SSL: &sslDoc{
			Enable: &c.TLS.Enabled,
			Key:    c.TLS.Key,
			Cert:   c.TLS.Cert,
			Root:   c.TLS.Root,
		},
	}
}

func newFilterSpec(s FilterSet) *filterSpec {
	spec := &filterSpec{}
	if tunnels := s.tunnels(); len(tunnels) > 0 {
		spec.Tunnel = &tunnelSpec{}
		for _, t := range tunnels {
			spec.Tunnel.Labels = append(spec.Tunnel.Labels, tunnelEntry{
				TerminalLabel: &t.TerminalLabel,
				ServiceLabel:  &t.ServiceLabel,
			})
		}
	}
	if routes := s.routes(); len(routes) > 0 {
		spec.Routing = &routingSpec{}
		for _, r := range routes {
			spec.Routing.Prefixes = append(spec.Routing.Prefixes, prefixEntry{
				Value:     &r.DestinationPrefix,
				PrefixLen: &r.PrefixLen,
			})
		}
	}
	return spec
}
