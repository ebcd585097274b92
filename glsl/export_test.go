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

package glsl

import "time"

// CleanLog exposes cleanLog for testing.
var CleanLog = cleanLog

// Debouncer exposes the event debouncer for testing.
type Debouncer = debouncer

// NewDebouncer exposes newDebouncer for testing.
var NewDebouncer = newDebouncer

// Allow exposes debouncer.allow for testing.
func (deb *Debouncer) Allow(name string, now time.Time) bool {
	return deb.allow(name, now)
}

// LogError exposes Watcher.logError for testing.
func (w *Watcher) LogError(err error) {
	w.logError(err)
}
