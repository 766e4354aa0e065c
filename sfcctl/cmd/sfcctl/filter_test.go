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

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/sfcgate/sfcgate/pkg/proto/sfc"
)

func TestParseTunnel(t *testing.T) {
	testCases := map[string]struct {
		input     string
		want      *sfc.FilterLayer
		assertErr assert.ErrorAssertionFunc
	}{
		"valid": {
			input:     "100:1",
			want:      sfc.NewTunnelFilter(100, 1),
			assertErr: assert.NoError,
		},
		"max labels": {
			input:     "18446744073709551615:0",
			want:      sfc.NewTunnelFilter(18446744073709551615, 0),
			assertErr: assert.NoError,
		},
		"missing separator": {
			input:     "100",
			assertErr: assert.Error,
		},
		"negative label": {
			input:     "-1:1",
			assertErr: assert.Error,
		},
		"label overflow": {
			input:     "18446744073709551616:1",
			assertErr: assert.Error,
		},
		"empty service label": {
			input:     "1:",
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := parseTunnel(tc.input)
			tc.assertErr(t, err)
			assert.Empty(t, cmp.Diff(tc.want, got, protocmp.Transform()))
		})
	}
}

func TestParseRoute(t *testing.T) {
	testCases := map[string]struct {
		input     string
		want      *sfc.FilterLayer
		assertErr assert.ErrorAssertionFunc
	}{
		"valid": {
			input:     "5/2",
			want:      sfc.NewRoutingFilter(5, 2),
			assertErr: assert.NoError,
		},
		"max prefix length": {
			input:     "7/64",
			want:      sfc.NewRoutingFilter(7, 64),
			assertErr: assert.NoError,
		},
		"prefix length too long": {
			input:     "7/65",
			assertErr: assert.Error,
		},
		"missing separator": {
			input:     "7",
			assertErr: assert.Error,
		},
		"not a number": {
			input:     "seven/2",
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := parseRoute(tc.input)
			tc.assertErr(t, err)
			assert.Empty(t, cmp.Diff(tc.want, got, protocmp.Transform()))
		})
	}
}

func TestLayerFlagOrder(t *testing.T) {
	var layers []*sfc.FilterLayer
	tunnel := &layerFlag{layers: &layers, parse: parseTunnel, kind: "terminal:service"}
	route := &layerFlag{layers: &layers, parse: parseRoute, kind: "value/prefix_len"}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(tunnel, "tunnel", "")
	fs.Var(route, "route", "")

	require.NoError(t, fs.Parse([]string{
		"--route", "5/2", "--tunnel", "100:1", "--route", "7/3",
	}))
	assert.Empty(t, cmp.Diff([]*sfc.FilterLayer{
		sfc.NewRoutingFilter(5, 2),
		sfc.NewTunnelFilter(100, 1),
		sfc.NewRoutingFilter(7, 3),
	}, layers, protocmp.Transform()))
	assert.Equal(t, "5/2,7/3", route.String())

	assert.Error(t, fs.Parse([]string{"--tunnel", "garbage"}))
	assert.Len(t, layers, 3)
}
