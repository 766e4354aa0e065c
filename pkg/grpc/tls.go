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

package grpc

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"google.golang.org/grpc/credentials"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

// TLSFiles names the PEM files used to set up TLS.
type TLSFiles struct {
	Key  string
	Cert string
	// Root is an optional CA bundle. On the server it is used to verify client
	// certificates, on the client to verify the server.
	Root string
}

// ServerCredentials loads the key pair and root bundle. Client certificates
// are verified if the client presents one.
func ServerCredentials(files TLSFiles) (credentials.TransportCredentials, error) {
	cert, err := tls.LoadX509KeyPair(files.Cert, files.Key)
	if err != nil {
		return nil, serrors.Wrap("loading key pair", err, "cert", files.Cert, "key", files.Key)
	}
	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	if files.Root != "" {
		pool, err := loadPool(files.Root)
		if err != nil {
			return nil, err
		}
		cfg.ClientCAs = pool
		cfg.ClientAuth = tls.VerifyClientCertIfGiven
	}
	return credentials.NewTLS(cfg), nil
}

// ClientCredentials creates client credentials. The key pair is optional and
// only used if both files are set.
func ClientCredentials(files TLSFiles, serverName string) (credentials.TransportCredentials, error) {
	cfg := &tls.Config{
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}
	if files.Root != "" {
		pool, err := loadPool(files.Root)
		if err != nil {
			return nil, err
		}
		cfg.RootCAs = pool
	}
	if files.Cert != "" && files.Key != "" {
		cert, err := tls.LoadX509KeyPair(files.Cert, files.Key)
		if err != nil {
			return nil, serrors.Wrap("loading key pair", err,
				"cert", files.Cert, "key", files.Key)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return credentials.NewTLS(cfg), nil
}

func loadPool(file string) (*x509.CertPool, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, serrors.Wrap("reading root bundle", err, "file", file)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(raw) {
		return nil, serrors.New("no certificates in root bundle", "file", file)
	}
	return pool, nil
}
