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

import (
	"fmt"
	"runtime/debug"
)

// StartupVersion is set at link time with -ldflags "-X".
var StartupVersion = "(devel)"

// VersionInfo returns a human-readable description of the build.
func VersionInfo() string {
	version, revision, dirty := StartupVersion, "unknown", ""
	if bi, ok := debug.ReadBuildInfo(); ok {
		if version == "(devel)" && bi.Main.Version != "" {
			version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				if s.Value == "true" {
					dirty = "-dirty"
				}
			}
		}
	}
	return fmt.Sprintf("  Version:       %s\n  Revision:      %s%s", version, revision, dirty)
}
