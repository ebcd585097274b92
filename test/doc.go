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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and are for values
// that later parts of the test depend on. For example, demanding that a
// preferences file has loaded before checking the values it contains.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions:
//
//	bool -> true is success
//	error -> nil is success
//
// The untyped nil value is considered a success. This is because of how
// errors usually work (nil to indicate no error).
//
// ExpectApproximate() is for floating point results. The tolerance is
// relative to the expected value, except for expected values with a
// magnitude of less than one where it is absolute. This makes it suitable
// for comparing matrix entries, many of which are expected to be zero.
//
// All functions accept optional tags. Tags are printed at the start of the
// failure message and are useful for identifying which iteration of a loop
// has failed.
package test
