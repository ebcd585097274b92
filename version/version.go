// This file is part of moderngl.
//
// moderngl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// moderngl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with moderngl.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program as recorded in the
// build information by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used in window titles and log messages.
const ApplicationName = "moderngl"

// number is set with -ldflags "-X github.com/glsketch/moderngl/version.number=v1.0.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version and the vcs revision. The version is
// "unreleased" if the program was built from a repository without a version
// number and "local" if there is no vcs information at all.
func Version() (string, string) {
	return version, revision
}

// Title returns the application name with the version appended. Suitable
// for window titles.
func Title(detail string) string {
	if detail == "" {
		return fmt.Sprintf("%s (%s)", ApplicationName, version)
	}
	return fmt.Sprintf("%s: %s (%s)", ApplicationName, detail, version)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var modified bool
	rev := ""

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
