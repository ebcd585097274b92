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

// Package paths contains functions to prepare paths to moderngl resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	pth := paths.ResourcePath("", "preferences")
//
// If the base resource path, currently defined to be ".moderngl", is present
// in the program's current directory then that is the base path that will be
// used. If it is not present then the user's config directory is used, as
// returned by os.UserConfigDir().
//
// In the example above, on a modern Linux system, the path returned will be:
//
//	/home/user/.config/moderngl/preferences
package paths
