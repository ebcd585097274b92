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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/glsketch/moderngl/modalflag"
	"github.com/glsketch/moderngl/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectSuccess(t, md.Parsed())

	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	md.AddSubModes("SPIN", "TEXTURE")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-overlay", "crate.png"})
	md.AddSubModes("SPIN", "TEXTURE")
	overlay := md.AddBool("overlay", false, "")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *overlay, true)
	test.ExpectEquality(t, md.Mode(), "SPIN")

	// the unmatched argument is not consumed
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "crate.png")
}

func TestLayeredModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-overlay", "texture", "-height", "400", "crate.png"})
	md.AddSubModes("SPIN", "TEXTURE")
	overlay := md.AddBool("overlay", false, "")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *overlay, true)
	test.ExpectEquality(t, md.Mode(), "TEXTURE")

	md.NewMode()
	test.ExpectFailure(t, md.Parsed())
	height := md.AddInt("height", 600, "")
	path := md.AddString("path", "", "")

	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *height, 400)
	test.ExpectEquality(t, *path, "")
	test.ExpectEquality(t, md.GetArg(0), "crate.png")
	test.ExpectEquality(t, md.Path(), "TEXTURE")
	test.ExpectEquality(t, md.String(), "TEXTURE")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, strings.Join(visited, ","), "height")
}

func TestNewArgsResetsPath(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"texture"})
	md.AddSubModes("SPIN", "TEXTURE")
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Path(), "TEXTURE")

	md.NewArgs([]string{})
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoHelpAvailable(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectEquality(t, out.String(), expectedHelp)
}

func TestHelpModes(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("spin", "texture")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: SPIN, TEXTURE\n" +
		"    default: SPIN\n"
	test.ExpectEquality(t, out.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("SPIN", "TEXTURE")
	md.AdditionalHelp("scenes are chosen by sub-mode")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: SPIN, TEXTURE\n" +
		"    default: SPIN\n" +
		"\n" +
		"scenes are chosen by sub-mode\n"
	test.ExpectEquality(t, out.String(), expectedHelp)
}

func TestHelpForMode(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"texture", "-help"})
	md.AddSubModes("SPIN", "TEXTURE")
	_, _ = md.Parse()

	md.NewMode()
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "No help available for TEXTURE\n")
}
