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

package env

const generalSample = `
# Identifier of this instance, used as metrics label and trace service name.
# (required)
id = "%s"

# Base directory for relative paths, e.g. the policy file. (default "")
config_dir = ""
`

const metricsSample = `
# Listen address of the prometheus endpoint /metrics, e.g. "127.0.0.1:30455".
# Metrics are not exported if empty. (default "")
prometheus = ""
`

const tracingSample = `
# Report traces to jaeger. (default false)
enabled = false
# Sample every trace. (default false)
debug = false
# UDP address of the jaeger agent. (default "localhost:6831")
agent = "localhost:6831"
`
