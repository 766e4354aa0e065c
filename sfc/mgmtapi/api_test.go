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

package mgmtapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sfcgate/sfcgate/sfc/mgmtapi"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

type serviceConfig struct {
	API struct {
		Addr string `toml:"addr"`
	} `toml:"api"`
}

func newServer(t *testing.T) (*httptest.Server, *policy.Store, string, zap.AtomicLevel) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"requests": {"query": false}}`), 0o644))
	store := &policy.Store{}
	require.NoError(t, store.ReloadFile(file))

	var cfg serviceConfig
	cfg.API.Addr = "127.0.0.1:30480"
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	s := &mgmtapi.Server{
		Config:     mgmtapi.NewConfigHandler(&cfg),
		Info:       mgmtapi.NewInfoHandler(),
		LogLevel:   mgmtapi.NewLogLevelHandler(level),
		PolicyFile: file,
		Policy:     store,
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, store, file, level
}

func decodePolicy(t *testing.T, body io.Reader) (uint64, *policy.Config) {
	t.Helper()
	var rep struct {
		Generation uint64          `json:"generation"`
		Policy     json.RawMessage `json:"policy"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&rep))
	cfg, err := policy.Parse(rep.Policy)
	require.NoError(t, err)
	return rep.Generation, cfg
}

func TestGetPolicy(t *testing.T) {
	ts, store, _, _ := newServer(t)

	rep, err := http.Get(ts.URL + mgmtapi.BaseURL + "/policy")
	require.NoError(t, err)
	defer rep.Body.Close()
	assert.Equal(t, http.StatusOK, rep.StatusCode)
	assert.Equal(t, "application/json", rep.Header.Get("Content-Type"))

	gen, cfg := decodePolicy(t, rep.Body)
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, store.Load(), cfg)
	assert.False(t, cfg.QueryEnabled)
}

func TestReloadPolicy(t *testing.T) {
	reload := func(t *testing.T, url string) *http.Response {
		rep, err := http.Post(url+mgmtapi.BaseURL+"/policy/reload", "", nil)
		require.NoError(t, err)
		t.Cleanup(func() { rep.Body.Close() })
		return rep
	}
	problem := func(t *testing.T, rep *http.Response) mgmtapi.Problem {
		var p mgmtapi.Problem
		require.NoError(t, json.NewDecoder(rep.Body).Decode(&p))
		return p
	}

	t.Run("valid file", func(t *testing.T) {
		ts, store, file, _ := newServer(t)
		raw := `{"sfcfilter": {"deny": {"ghost_tunnel_identifier": ` +
			`{"ghostlabel": [{"terminal_label": 100, "service_label": 1}]}}}}`
		require.NoError(t, os.WriteFile(file, []byte(raw), 0o644))

		rep := reload(t, ts.URL)
		assert.Equal(t, http.StatusOK, rep.StatusCode)
		gen, cfg := decodePolicy(t, rep.Body)
		assert.Equal(t, uint64(2), gen)
		assert.Equal(t, 1, cfg.Deny.Len())
		assert.Equal(t, uint64(2), store.Generation())
	})
	t.Run("malformed file", func(t *testing.T) {
		ts, store, file, _ := newServer(t)
		before := store.Load()
		require.NoError(t, os.WriteFile(file, []byte(`{"requests": {`), 0o644))

		rep := reload(t, ts.URL)
		assert.Equal(t, http.StatusUnprocessableEntity, rep.StatusCode)
		assert.Equal(t, "application/problem+json", rep.Header.Get("Content-Type"))
		p := problem(t, rep)
		assert.Equal(t, mgmtapi.InvalidPolicy, p.Type)
		assert.NotEmpty(t, p.Detail)
		assert.Same(t, before, store.Load())
	})
	t.Run("missing file", func(t *testing.T) {
		ts, store, file, _ := newServer(t)
		before := store.Load()
		require.NoError(t, os.Remove(file))

		rep := reload(t, ts.URL)
		assert.Equal(t, http.StatusUnprocessableEntity, rep.StatusCode)
		assert.Equal(t, mgmtapi.NotFound, problem(t, rep).Type)
		assert.Same(t, before, store.Load())
	})
}

func TestGetConfig(t *testing.T) {
	ts, _, _, _ := newServer(t)
	rep, err := http.Get(ts.URL + mgmtapi.BaseURL + "/config")
	require.NoError(t, err)
	defer rep.Body.Close()
	raw, err := io.ReadAll(rep.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rep.StatusCode)
	assert.Contains(t, string(raw), "[api]")
	assert.Contains(t, string(raw), "127.0.0.1:30480")
}

func TestGetInfo(t *testing.T) {
	ts, _, _, _ := newServer(t)
	rep, err := http.Get(ts.URL + mgmtapi.BaseURL + "/info")
	require.NoError(t, err)
	defer rep.Body.Close()
	raw, err := io.ReadAll(rep.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Version:")
	assert.Contains(t, string(raw), "pid:")
}

func TestLogLevel(t *testing.T) {
	ts, _, _, level := newServer(t)
	url := ts.URL + mgmtapi.BaseURL + "/log/level"

	req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(`{"level":"debug"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rep, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	rep.Body.Close()
	assert.Equal(t, http.StatusOK, rep.StatusCode)
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	rep, err = http.Get(url)
	require.NoError(t, err)
	defer rep.Body.Close()
	var body struct {
		Level string `json:"level"`
	}
	require.NoError(t, json.NewDecoder(rep.Body).Decode(&body))
	assert.Equal(t, "debug", body.Level)
}

func TestCORS(t *testing.T) {
	ts, _, _, _ := newServer(t)
	req, err := http.NewRequest(http.MethodGet, ts.URL+mgmtapi.BaseURL+"/policy", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	rep, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer rep.Body.Close()
	assert.Equal(t, "*", rep.Header.Get("Access-Control-Allow-Origin"))
}
