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

package sfcgate_test

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfcgate/sfcgate/pkg/metrics"
	"github.com/sfcgate/sfcgate/private/env"
	"github.com/sfcgate/sfcgate/sfc/policy"
	"github.com/sfcgate/sfcgate/sfcgate"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := sfcgate.NewMetrics(metrics.WithRegistry(reg))
	m.WatcherFailures.Inc()

	store := policy.Store{Metrics: m.Policy}
	require.NoError(t, store.Reload([]byte(`{}`)))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WatcherFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Policy.Generation))
	n, err := testutil.GatherAndCount(reg,
		"sfcgate_policy_watch_failures_total", "sfcgate_policy_generation")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestServerOptions(t *testing.T) {
	opts, err := sfcgate.ServerOptions(policy.TLS{})
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	missing := filepath.Join(t.TempDir(), "missing.pem")
	_, err = sfcgate.ServerOptions(policy.TLS{Enabled: true, Key: missing, Cert: missing})
	assert.Error(t, err)
}

func TestInitTracerDisabled(t *testing.T) {
	closer, err := sfcgate.InitTracer(env.Tracing{}, "sfcgate-test")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
