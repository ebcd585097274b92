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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// Packages that raise curated errors export the pattern as a constant. The
// caller can then use Is() to check for that specific error:
//
//	if curated.Is(err, glsl.CompileError) {
//		// keep the previous shader program
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain:
//
//	e := curated.Errorf(glsl.LinkError, "spin", log)
//	f := curated.Errorf("scene: %v", e)
//
//	curated.Has(f, glsl.LinkError) // true
//	curated.Is(f, glsl.LinkError)  // false
//
// The Error() function ensures that the chain does not contain duplicate
// adjacent parts. Chains are composed of parts separated by the sub-string
// ": ". So wrapping a "texture: file not found" error with the pattern
// "texture: %v" produces the message:
//
//	texture: file not found
//
// and not:
//
//	texture: texture: file not found
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library work with any error value given to Errorf().
package curated
