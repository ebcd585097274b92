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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glsketch/moderngl/paths"
	"github.com/glsketch/moderngl/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer func() {
		_ = os.Chdir(wd)
	}()

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".moderngl", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".moderngl/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".moderngl/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".moderngl/baz")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".moderngl")

	// without the local directory the user's config directory is used
	test.DemandSuccess(t, os.Remove(".moderngl"))
	cnf, err := os.UserConfigDir()
	if err == nil {
		test.ExpectEquality(t, paths.ResourcePath("", "preferences"), filepath.Join(cnf, "moderngl", "preferences"))
	}
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, paths.UniqueFilenameAt("cpu", "Spin", n), "cpu_spin_20210304_050607")
	test.ExpectEquality(t, paths.UniqueFilenameAt("cpu", " ", n), "cpu_20210304_050607")
}
