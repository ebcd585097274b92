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

// Package prefs provides typed preference values that can be saved to and
// loaded from disk.
//
// The Bool, Int, Float and String types can be used on their own or added to
// a Disk instance under a key. Values can be set from their native Go type or
// from a string, which is how values given on the command line arrive.
//
//	var width prefs.Int
//	_ = width.Set(800)
//
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("preferences.yaml"))
//	_ = dsk.Add("window.width", &width)
//	_ = dsk.Load()
//
// A hook can be registered to validate values before they are stored. If the
// hook returns an error the value is not changed:
//
//	order.SetHookPre(func(v prefs.Value) error {
//		_, err := affine.ParseOrder(v.(string))
//		return err
//	})
//
// Preferences can be overridden from the command line with a string of the
// form "key::value; key::value". The string is pushed onto a stack with
// PushCommandLineStack() before Disk.Load() is called.
package prefs
