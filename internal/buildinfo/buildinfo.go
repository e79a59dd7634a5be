// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buildinfo reports the version information embedded in the binary
// by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"time"
)

// VersionString returns a human readable summary of the binary's version,
// code revision and compiler.
func VersionString() string {
	const unknown = "unknown"

	semver := unknown
	revision := unknown
	buildTime := unknown
	compiler := unknown

	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" {
			semver = bi.Main.Version
		}

		compiler = bi.GoVersion

		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = shortHash(setting.Value)
			case "vcs.time":
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					buildTime = t.Format(time.UnixDate)
				}
			}
		}
	}

	return fmt.Sprintf("Version: %s\nCode Revision %s from %s built with %s\n",
		semver, revision, buildTime, compiler)
}

func shortHash(rev string) string {
	const short = 8

	if len(rev) > short {
		return rev[:short]
	}

	if rev == "" {
		return "unknown"
	}

	return rev
}
