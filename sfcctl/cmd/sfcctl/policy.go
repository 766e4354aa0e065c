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
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
	"github.com/sfcgate/sfcgate/private/app/command"
	"github.com/sfcgate/sfcgate/private/app/flag"
	"github.com/sfcgate/sfcgate/sfc/mgmtapi"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

func newPolicy(pather command.Pather) *cobra.Command {
	var envFlags flag.ClientEnvironment
	var flags struct {
		timeout time.Duration
		format  string
		reload  bool
		noColor bool
	}

	var cmd = &cobra.Command{
		Use:   "policy [flags]",
		Short: "Show the live policy of the gateway",
		Args:  cobra.NoArgs,
		Example: fmt.Sprintf(`  %[1]s policy --api 127.0.0.1:30480
  %[1]s policy --reload
  %[1]s policy --format yaml`, pather.CommandPath()),
		Long: `'policy' fetches the policy snapshot the gateway currently decides with
from its management API.

With --reload the gateway first reloads the policy file. If the file is invalid
the gateway keeps the previous policy and the error is reported.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch flags.format {
			case "human", "json", "yaml":
			default:
				return serrors.New("format not supported", "format", flags.format)
			}
			if err := envFlags.LoadExternalVars(); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()
			rep, err := fetchPolicy(ctx, http.DefaultClient, envFlags.API(), flags.reload)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch flags.format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(newPolicyView(rep))
			case "yaml":
				return yaml.NewEncoder(w).Encode(newPolicyView(rep))
			default:
				renderPolicy(w, rep, newPalette(colored(w, flags.noColor)))
				return nil
			}
		},
	}
	envFlags.Register(cmd.Flags())
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 5*time.Second, "Timeout")
	cmd.Flags().StringVar(&flags.format, "format", "human",
		"Specify the output format (human|json|yaml)")
	cmd.Flags().BoolVar(&flags.reload, "reload", false,
		"Reload the policy file before showing the policy")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	return cmd
}

// fetchPolicy gets the live policy from the management API at addr. If reload
// is set, the policy file is reloaded first.
func fetchPolicy(ctx context.Context, client *http.Client, addr string,
	reload bool) (mgmtapi.PolicyResponse, error) {

	method, path := http.MethodGet, "/policy"
	if reload {
		method, path = http.MethodPost, "/policy/reload"
	}
	url := "http://" + addr + mgmtapi.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return mgmtapi.PolicyResponse{}, serrors.Wrap("creating request", err, "url", url)
	}
	rep, err := client.Do(req)
	if err != nil {
		return mgmtapi.PolicyResponse{}, serrors.Wrap("requesting policy", err, "url", url)
	}
	defer rep.Body.Close()

	if rep.StatusCode != http.StatusOK {
		var p mgmtapi.Problem
		if err := json.NewDecoder(rep.Body).Decode(&p); err != nil {
			return mgmtapi.PolicyResponse{}, serrors.New("management API error",
				"status", rep.Status)
		}
		return mgmtapi.PolicyResponse{}, serrors.New(p.Title, "status", p.Status,
			"detail", p.Detail)
	}
	var body mgmtapi.PolicyResponse
	if err := json.NewDecoder(rep.Body).Decode(&body); err != nil {
		return mgmtapi.PolicyResponse{}, serrors.Wrap("decoding policy", err)
	}
	if body.Policy == nil {
		body.Policy = policy.Default()
	}
	return body, nil
}

// policyView is the machine readable rendering of the policy.
type policyView struct {
	Generation   uint64          `json:"generation" yaml:"generation"`
	Address      string          `json:"address,omitempty" yaml:"address,omitempty"`
	TLS          bool            `json:"tls" yaml:"tls"`
	Requests     map[string]bool `json:"requests" yaml:"requests"`
	Deny         []string        `json:"deny" yaml:"deny"`
	Allow        []string        `json:"allow" yaml:"allow"`
	Delay        []string        `json:"delay" yaml:"delay"`
	DelaySeconds float64         `json:"delay_seconds" yaml:"delay_seconds"`
}

func newPolicyView(rep mgmtapi.PolicyResponse) policyView {
	cfg := rep.Policy
	return policyView{
		Generation: rep.Generation,
		Address:    address(cfg.Address),
		TLS:        cfg.TLS.Enabled,
		Requests: map[string]bool{
			"create": cfg.CreateEnabled,
			"delete": cfg.DeleteEnabled,
			"query":  cfg.QueryEnabled,
		},
		Deny:         identifiers(cfg.Deny),
		Allow:        identifiers(cfg.Allow),
		Delay:        identifiers(cfg.Delay),
		DelaySeconds: cfg.DelayDuration.Seconds(),
	}
}

func identifiers(s policy.FilterSet) []string {
	ids := make([]string, 0, s.Len())
	for _, id := range s.Identifiers() {
		ids = append(ids, id.String())
	}
	return ids
}

func address(a policy.Address) string {
	if a.Host == "" {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}

func renderPolicy(w io.Writer, rep mgmtapi.PolicyResponse, p palette) {
	cfg := rep.Policy
	onOff := func(enabled bool) {
		if enabled {
			p.good.Fprint(w, "on")
		} else {
			p.bad.Fprint(w, "off")
		}
	}
	toggle := func(name string, enabled bool) {
		fmt.Fprintf(w, " %s=", name)
		onOff(enabled)
	}
	p.key.Fprint(w, "Generation: ")
	fmt.Fprintln(w, rep.Generation)
	if addr := address(cfg.Address); addr != "" {
		p.key.Fprint(w, "Address:    ")
		fmt.Fprintln(w, addr)
	}
	p.key.Fprint(w, "TLS:        ")
	onOff(cfg.TLS.Enabled)
	fmt.Fprintln(w)
	p.key.Fprint(w, "Requests:  ")
	toggle("create", cfg.CreateEnabled)
	toggle("delete", cfg.DeleteEnabled)
	toggle("query", cfg.QueryEnabled)
	fmt.Fprintln(w)
	p.key.Fprint(w, "Delay:      ")
	fmt.Fprintln(w, cfg.DelayDuration)

	var rows [][]string
	for _, list := range []struct {
		name string
		set  policy.FilterSet
	}{
		{"deny", cfg.Deny},
		{"allow", cfg.Allow},
		{"delay", cfg.Delay},
	} {
		for _, id := range list.set.Identifiers() {
			kind, value := "route", ""
			switch id := id.(type) {
			case policy.TunnelIdentifier:
				kind = "tunnel"
				value = fmt.Sprintf("%d:%d", id.TerminalLabel, id.ServiceLabel)
			case policy.RoutingIdentifier:
				value = fmt.Sprintf("%d/%d", id.DestinationPrefix, id.PrefixLen)
			}
			rows = append(rows, []string{list.name, kind, value})
		}
	}
	fmt.Fprintln(w)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No filter list active, all enabled requests are allowed.")
		return
	}
	if cfg.Deny.Active() && cfg.Allow.Active() {
		p.bad.Fprintln(w, "Deny and allow list are both active, the allow list is ignored.")
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"LIST", "KIND", "IDENTIFIER"})
	table.AppendBulk(rows)
	table.Render()
}
