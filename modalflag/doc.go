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

// Package modalflag wraps the flag package from the standard library so that
// a command line can be made up of layered modes, each with its own flags.
//
// Arguments are given once with NewArgs() and then parsed one layer at a
// time with Parse(). The moderngl command line has a top layer of shared
// flags followed by a sub-mode selecting the scene:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SPIN", "TEXTURE")
//	overlay := md.AddBool("overlay", false, "show the overlay at startup")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SPIN":
//		...
//	case "TEXTURE":
//		md.NewMode()
//		height := md.AddInt("height", 600, "window height")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default. It is selected
// when the first non-flag argument does not name a sub-mode, in which case
// that argument is left in RemainingArgs(). A command line of
//
//	moderngl -overlay texture -height 400 crate.png
//
// selects the TEXTURE mode and leaves "crate.png" as the only remaining
// argument once the second layer has been parsed. Mode() returns the most
// recent sub-mode and Path() returns every selected sub-mode in order.
//
// Help is printed automatically to the Output writer when -help or -h is
// given, after which Parse() returns ParseHelp.
package modalflag
