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

// Package mgmtapi implements the http management API of the gateway.
package mgmtapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

// BaseURL is the prefix of all API routes.
const BaseURL = "/api/v1"

// Problem types.
const (
	InternalError = "/problems/internal-error"
	NotFound      = "/problems/not-found"
	InvalidPolicy = "/problems/invalid-policy"
)

// PolicyStore is the policy state the API exposes.
type PolicyStore interface {
	Load() *policy.Config
	Generation() uint64
	ReloadFile(file string) error
}

// PolicyResponse is the body of the policy endpoints.
type PolicyResponse struct {
	Generation uint64         `json:"generation"`
	Policy     *policy.Config `json:"policy"`
}

// Problem is an RFC 7807 error response.
type Problem struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Server implements the management API.
type Server struct {
	Config   http.HandlerFunc
	Info     http.HandlerFunc
	LogLevel http.HandlerFunc
	// PolicyFile is reloaded by the reload endpoint.
	PolicyFile string
	Policy     PolicyStore
}

// Handler returns the router serving the API below BaseURL.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
	}))
	r.Route(BaseURL, func(r chi.Router) {
		r.Get("/config", s.GetConfig)
		r.Get("/info", s.GetInfo)
		r.Get("/log/level", s.GetLogLevel)
		r.Put("/log/level", s.SetLogLevel)
		r.Get("/policy", s.GetPolicy)
		r.Post("/policy/reload", s.ReloadPolicy)
	})
	return r
}

// GetConfig is an indirection to the http handler.
func (s *Server) GetConfig(w http.ResponseWriter, r *http.Request) {
	s.Config(w, r)
}

// GetInfo is an indirection to the http handler.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.Info(w, r)
}

// GetLogLevel is an indirection to the http handler.
func (s *Server) GetLogLevel(w http.ResponseWriter, r *http.Request) {
	s.LogLevel(w, r)
}

// SetLogLevel is an indirection to the http handler.
func (s *Server) SetLogLevel(w http.ResponseWriter, r *http.Request) {
	s.LogLevel(w, r)
}

// GetPolicy returns the live policy snapshot.
func (s *Server) GetPolicy(w http.ResponseWriter, r *http.Request) {
	s.writePolicy(w)
}

// ReloadPolicy reloads the policy file and returns the resulting snapshot.
// A failed reload leaves the live policy untouched.
func (s *Server) ReloadPolicy(w http.ResponseWriter, r *http.Request) {
	if err := s.Policy.ReloadFile(s.PolicyFile); err != nil {
		log.FromCtx(r.Context()).Info("Policy reload through API failed", "err", err)
		p := Problem{
			Type:   InvalidPolicy,
			Title:  "invalid policy",
			Status: http.StatusUnprocessableEntity,
			Detail: err.Error(),
		}
		if errors.Is(err, policy.ErrNotFound) {
			p.Type, p.Title = NotFound, "policy file not found"
		}
		ErrorResponse(w, p)
		return
	}
	s.writePolicy(w)
}

func (s *Server) writePolicy(w http.ResponseWriter) {
	// Generation first, so the snapshot is at least as new as the number.
	rep := PolicyResponse{Generation: s.Policy.Generation(), Policy: s.Policy.Load()}
	raw, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		ErrorResponse(w, Problem{
			Type:   InternalError,
			Title:  "unable to marshal response",
			Status: http.StatusInternalServerError,
			Detail: err.Error(),
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(append(raw, '\n'))
}

// ErrorResponse writes a detailed error response.
func ErrorResponse(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	// Nothing left to do if this fails.
	_ = enc.Encode(p)
}
