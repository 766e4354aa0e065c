// Copyright 2021 Anapaya Systems
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

// Package flag contains the command line flags shared by the sfcgate client
// tools.
package flag

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"os"
	"sync"

	"github.com/spf13/pflag"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

const (
	// DefaultServer is the default address of the SFC API.
	DefaultServer = "localhost:50051"
	// DefaultAPI is the default address of the management API.
	DefaultAPI = "localhost:30480"

	defaultEnvironmentFile = "/etc/sfcgate/environment.json"
)

// Environment variables read by ClientEnvironment.
const (
	EnvServer = "SFCGATE_SERVER"
	EnvAPI    = "SFCGATE_API"
)

type addrVal string

func (v *addrVal) Set(val string) error {
	if _, _, err := net.SplitHostPort(val); err != nil {
		return err
	}
	*v = addrVal(val)
	return nil
}

func (v *addrVal) Type() string   { return "host:port" }
func (v *addrVal) String() string { return string(*v) }

// File is the layout of the environment file.
type File struct {
	Server string `json:"server,omitempty"`
	API    string `json:"api,omitempty"`
}

// ClientEnvironment resolves the addresses the client tools connect to.
type ClientEnvironment struct {
	server     string
	serverFlag *pflag.Flag
	serverEnv  *string
	api        string
	apiFlag    *pflag.Flag
	apiEnv     *string
	file       File
	filepath   string

	mtx sync.Mutex
}

// Register registers the command line flags. This should be called when command
// line flags are set up, before any command that accesses the values is called.
// It is safe to not call this at all, which means command line flag values are
// not considered.
func (e *ClientEnvironment) Register(flagSet *pflag.FlagSet) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.serverFlag = flagSet.VarPF((*addrVal)(&e.server), "server", "s",
		"Address of the SFC API (default "+DefaultServer+")")
	e.apiFlag = flagSet.VarPF((*addrVal)(&e.api), "api", "",
		"Address of the management API (default "+DefaultAPI+")")
}

// SetFilePath sets the environment file. If it is not set, the default file is
// used.
func (e *ClientEnvironment) SetFilePath(path string) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.filepath = path
}

// LoadExternalVars loads variables from the environment file and from the OS
// environment variables. Parsing errors will be reported with an error. A
// missing file or environment variable is not reported.
func (e *ClientEnvironment) LoadExternalVars() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if err := e.loadFile(); err != nil {
		return serrors.Wrap("loading environment file", err)
	}
	if err := e.loadEnv(); err != nil {
		return serrors.Wrap("loading environment variables", err)
	}
	return nil
}

// loadFile loads the environment file. If the file doesn't exist no error is
// returned and values from the environment file are not considered.
func (e *ClientEnvironment) loadFile() error {
	if e.filepath == "" {
		e.filepath = defaultEnvironmentFile
	}
	raw, err := os.ReadFile(e.filepath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return serrors.Wrap("loading file", err)
	}
	if err := json.Unmarshal(raw, &e.file); err != nil {
		return serrors.Wrap("parsing file", err, "file", e.filepath)
	}
	return nil
}

func (e *ClientEnvironment) loadEnv() error {
	for name, dst := range map[string]**string{
		EnvServer: &e.serverEnv,
		EnvAPI:    &e.apiEnv,
	} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if _, _, err := net.SplitHostPort(v); err != nil {
			return serrors.Wrap("parsing "+name, err)
		}
		*dst = &v
	}
	return nil
}

// Server returns the address of the SFC API. The value is loaded from one of
// the following sources with precedence:
//  1. Command line flag (--server)
//  2. Environment variable (SFCGATE_SERVER)
//  3. Environment configuration file
//  4. Default value
func (e *ClientEnvironment) Server() string {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return resolve(e.serverFlag, e.server, e.serverEnv, e.file.Server, DefaultServer)
}

// API returns the address of the management API, with the same precedence as
// Server.
func (e *ClientEnvironment) API() string {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return resolve(e.apiFlag, e.api, e.apiEnv, e.file.API, DefaultAPI)
}

func resolve(flag *pflag.Flag, flagVal string, env *string, file, def string) string {
	switch {
	case flag != nil && flag.Changed:
		return flagVal
	case env != nil:
		return *env
	case file != "":
		return file
	default:
		return def
	}
}
