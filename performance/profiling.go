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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/glsketch/moderngl/curated"
	"github.com/glsketch/moderngl/logger"
	"github.com/glsketch/moderngl/paths"
)

// Profile specifies which profiles are written by RunProfiler(). Values can
// be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ProfileError is returned when a profile cannot be created or written.
const ProfileError = "performance: %v"

// ParseProfile converts a comma separated list of profile names to a Profile
// value. Valid names are "cpu", "mem" and "none".
func ParseProfile(s string) (Profile, error) {
	p := ProfileNone
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "none", "":
		default:
			return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile: %s", n))
		}
	}
	return p, nil
}

// RunProfiler runs the function, writing the requested profiles. The tag is
// included in the profile filenames.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		fn := fmt.Sprintf("%s.profile", paths.UniqueFilename("cpu", tag))
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()

		logger.Logf(logger.Allow, "performance", "cpu profile: %s", fn)
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		fn := fmt.Sprintf("%s.profile", paths.UniqueFilename("mem", tag))
		f, perr := os.Create(fn)
		if perr != nil {
			return curated.Errorf(ProfileError, perr)
		}
		defer f.Close()

		runtime.GC()
		perr = pprof.WriteHeapProfile(f)
		if perr != nil {
			return curated.Errorf(ProfileError, perr)
		}

		logger.Logf(logger.Allow, "performance", "mem profile: %s", fn)
	}

	return err
}
