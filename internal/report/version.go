// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"runtime/debug"

	"golang.org/x/mod/semver"

	"github.com/open2b/geobench/engine"
)

// EngineVersions returns the versions of the engine modules linked in the
// executable, by engine name. The version of a module that cannot be
// determined is "unknown".
func EngineVersions() map[string]string {
	info, _ := debug.ReadBuildInfo()
	return engineVersions(info, engine.All())
}

func engineVersions(info *debug.BuildInfo, engines []engine.Engine) map[string]string {
	versions := make(map[string]string, len(engines))
	for _, e := range engines {
		versions[e.Name()] = moduleVersion(info, e.Module())
	}
	return versions
}

// moduleVersion returns the canonical version of the module with the given
// path, following replacements.
func moduleVersion(info *debug.BuildInfo, path string) string {
	if info == nil {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		if v := semver.Canonical(dep.Version); v != "" {
			return v
		}
		break
	}
	return "unknown"
}
