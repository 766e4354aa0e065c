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
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	libgrpc "github.com/sfcgate/sfcgate/pkg/grpc"
	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/pkg/private/serrors"
	"github.com/sfcgate/sfcgate/pkg/proto/sfc"
	"github.com/sfcgate/sfcgate/private/app/command"
	"github.com/sfcgate/sfcgate/private/app/flag"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

// rpcFlags are the flags shared by the request commands.
type rpcFlags struct {
	timeout    time.Duration
	tls        bool
	tlsFiles   libgrpc.TLSFiles
	serverName string
	noColor    bool
	logLevel   string
	tracer     string
}

func (f *rpcFlags) register(flags *pflag.FlagSet) {
	flags.DurationVar(&f.timeout, "timeout", 10*time.Second,
		"Timeout of the request, including a delay imposed by the policy")
	flags.BoolVar(&f.tls, "tls", false, "Connect with TLS")
	flags.StringVar(&f.tlsFiles.Root, "tls.root", "",
		"CA bundle to verify the server (default system roots)")
	flags.StringVar(&f.tlsFiles.Cert, "tls.cert", "", "Client certificate")
	flags.StringVar(&f.tlsFiles.Key, "tls.key", "", "Client key")
	flags.StringVar(&f.serverName, "tls.server-name", "",
		"Name to verify the server certificate against (default host of --server)")
	flags.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&f.logLevel, "log.level", "", logLevelUsage)
	flags.StringVar(&f.tracer, "tracing.agent", "", "Tracing agent address")
}

// rpcCall performs one RPC with the client.
type rpcCall func(ctx context.Context, c sfc.SfcServiceClient) error

func newCreate(pather command.Pather) *cobra.Command {
	var envFlags flag.ClientEnvironment
	var flags rpcFlags
	var layers []*sfc.FilterLayer

	var cmd = &cobra.Command{
		Use:   "create [flags]",
		Short: "Request the creation of a service function chain",
		Args:  cobra.NoArgs,
		Example: fmt.Sprintf(`  %[1]s create --tunnel 100:1
  %[1]s create --route 5/2 --tunnel 7:7 --server 127.0.0.1:50051
  %[1]s create --tls --tls.root ca.pem --server gateway.local:50051`, pather.CommandPath()),
		Long: `'create' sends a CreateSfc request carrying one filter layer for every
--tunnel and --route flag, in command line order.

The gateway may hold the request back if the filter matches its delay list. The
timeout must cover that delay.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &sfc.CreateSfcRequest{SfcFilter: &sfc.SfcFilter{FilterLayers: layers}}
			return runRPC(cmd, &envFlags, &flags, policy.MethodCreateSfc,
				func(ctx context.Context, c sfc.SfcServiceClient) error {
					_, err := c.CreateSfc(ctx, req, libgrpc.RetryProfile...)
					return err
				},
			)
		},
	}
	envFlags.Register(cmd.Flags())
	flags.register(cmd.Flags())
	cmd.Flags().Var(&layerFlag{layers: &layers, parse: parseTunnel, kind: "terminal:service"},
		"tunnel", "Tunnel identifier filter layer (repeatable)")
	cmd.Flags().Var(&layerFlag{layers: &layers, parse: parseRoute, kind: "value/prefix_len"},
		"route", "Routing identifier filter layer (repeatable)")
	return cmd
}

func newDelete(pather command.Pather) *cobra.Command {
	var envFlags flag.ClientEnvironment
	var flags rpcFlags

	var cmd = &cobra.Command{
		Use:     "delete [flags]",
		Short:   "Request the deletion of a service function chain",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf(`  %[1]s delete --server 127.0.0.1:50051`, pather.CommandPath()),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRPC(cmd, &envFlags, &flags, policy.MethodDeleteSfc,
				func(ctx context.Context, c sfc.SfcServiceClient) error {
					_, err := c.DeleteSfc(ctx, &sfc.DeleteSfcRequest{}, libgrpc.RetryProfile...)
					return err
				},
			)
		},
	}
	envFlags.Register(cmd.Flags())
	flags.register(cmd.Flags())
	return cmd
}

func newQuery(pather command.Pather) *cobra.Command {
	var envFlags flag.ClientEnvironment
	var flags rpcFlags

	var cmd = &cobra.Command{
		Use:     "query [flags]",
		Short:   "Send a query request",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf(`  %[1]s query --server 127.0.0.1:50051`, pather.CommandPath()),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRPC(cmd, &envFlags, &flags, policy.MethodQuery,
				func(ctx context.Context, c sfc.SfcServiceClient) error {
					_, err := c.Query(ctx, &sfc.QueryRequest{}, libgrpc.RetryProfile...)
					return err
				},
			)
		},
	}
	envFlags.Register(cmd.Flags())
	flags.register(cmd.Flags())
	return cmd
}

func runRPC(cmd *cobra.Command, envFlags *flag.ClientEnvironment, flags *rpcFlags,
	method policy.Method, call rpcCall) error {

	if err := envFlags.LoadExternalVars(); err != nil {
		return err
	}
	if err := setupLog(flags.logLevel); err != nil {
		return serrors.Wrap("setting up logging", err)
	}
	closer, err := setupTracer("sfcctl", flags.tracer)
	if err != nil {
		return serrors.Wrap("setting up tracing", err)
	}
	defer closer()
	cmd.SilenceUsage = true

	dialer := libgrpc.SimpleDialer{}
	if flags.tls {
		creds, err := libgrpc.ClientCredentials(flags.tlsFiles, flags.serverName)
		if err != nil {
			return serrors.Wrap("loading TLS credentials", err)
		}
		dialer.Credentials = creds
	}
	server := envFlags.Server()
	log.Debug("Resolved client environment", "server", server, "tls", flags.tls)

	span, ctx := opentracing.StartSpanFromContext(cmd.Context(), "sfcctl."+method.String())
	defer span.Finish()
	ctx, cancel := context.WithTimeout(ctx, flags.timeout)
	defer cancel()

	conn, err := dialer.Dial(ctx, server)
	if err != nil {
		return err
	}
	defer conn.Close()

	start := time.Now()
	err = call(ctx, sfc.NewSfcServiceClient(conn))
	if err != nil && ctx.Err() != nil {
		// Canceled locally, not by the gateway.
		return serrors.Wrap("calling "+method.String(), ctx.Err(), "server", server)
	}
	if err := report(cmd.OutOrStdout(), method, time.Since(start), err,
		newPalette(colored(cmd.OutOrStdout(), flags.noColor))); err != nil {
		if errors.Is(err, errRefused) {
			return err
		}
		return serrors.Wrap("calling "+method.String(), err, "server", server)
	}
	return nil
}

// report prints the outcome of the call. A refusal is reported and returned
// as errRefused, other errors are returned unchanged.
func report(w io.Writer, method policy.Method, took time.Duration, err error, p palette) error {
	switch status.Code(err) {
	case codes.OK:
		p.key.Fprintf(w, "%s: ", method)
		p.good.Fprint(w, "accepted")
		fmt.Fprintf(w, " (%s)\n", took.Round(time.Millisecond))
		return nil
	case codes.Canceled:
		p.key.Fprintf(w, "%s: ", method)
		p.bad.Fprintln(w, "refused")
		return errRefused
	default:
		return err
	}
}
