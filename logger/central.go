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

package logger

import "io"

// the central log is shared by every package in moderngl. tests that need
// an isolated log should use NewLogger()
var central = NewLogger(centralEntries)

const centralEntries = 256

// Log adds an entry to the central log. The detail can be a string, an
// error, a fmt.Stringer or any other value.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear the central log.
func Clear() {
	central.Clear()
}

// Write every entry in the central log to output.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries in the central log to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries to output as they are added to the central
// log. A nil output turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
