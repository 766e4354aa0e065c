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

package mgmtapi

import (
	"fmt"
	"net/http"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/sfcgate/sfcgate/private/env"
)

// NewConfigHandler serves cfg encoded as TOML.
func NewConfigHandler(cfg any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := toml.Marshal(cfg)
		if err != nil {
			http.Error(w, "unable to marshal config", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write(raw)
	}
}

// NewInfoHandler serves the build and process information.
func NewInfoHandler() http.HandlerFunc {
	started := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintf(w, "%s\n  pid:           %d\n  uptime:        %s\n",
			env.VersionInfo(), os.Getpid(), time.Since(started).Round(time.Second))
	}
}

// NewLogLevelHandler reports and changes the level. PUT takes a JSON body
// like {"level":"debug"}.
func NewLogLevelHandler(level zap.AtomicLevel) http.HandlerFunc {
	return level.ServeHTTP
}
