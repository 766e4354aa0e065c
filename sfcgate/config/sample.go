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

package config

const apiSample = `
# The address to serve the management API on (host:port or ip:port or
# :port). If not set, the API is not served. (default "")
addr = ""
`

const policySample = `
# The JSON policy file. Relative paths are resolved against
# general.config_dir. The file is reloaded when it changes. (required)
file = "policy.json"

# Quiet period after a change of the policy file before it is reloaded.
# (default 250ms)
debounce = "250ms"

# Interval between attempts to re-establish a failed watch of the policy
# file. (default 5s)
retry_interval = "5s"
`

const dispatcherSample = `
# Number of workers evaluating requests. 0 means one per CPU. (default 0)
workers = 0

# Initial capacity of the event queue. (default 1024)
queue_size = 1024
`
