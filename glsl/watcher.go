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

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/glsketch/moderngl/logger"
	"github.com/glsketch/moderngl/shaders"
)

// events for the same file that arrive within this duration of one another
// are treated as a single change. editors often write a file in several steps
const debounce = 100 * time.Millisecond

// Watcher monitors a directory for changes to shader source files. The base
// name of each changed file is sent on the Events channel. Errors from the
// underlying file system watcher are logged.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
	Events  chan string
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher is the preferred method of initialisation for the Watcher type.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		dir:     dir,
		Events:  make(chan string, 16),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. The Events channel is closed.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Drain returns the names of all files that have changed since the last call
// to Drain. It does not block. Names are not repeated.
func (w *Watcher) Drain() []string {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return changed
			}
			if !seen[name] {
				seen[name] = true
				changed = append(changed, name)
			}
		default:
			return changed
		}
	}
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.done)
	}()

	deb := newDebouncer(debounce)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !shaders.IsShaderFile(event.Name) {
				continue
			}
			if !deb.allow(event.Name, time.Now()) {
				continue
			}

			select {
			case w.Events <- filepath.Base(event.Name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) logError(err error) {
	logger.Logf(logger.Allow, "glsl", "watcher: %s: %v", w.dir, err)
}

// debouncer drops repeated events for the same file.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		last:   make(map[string]time.Time),
	}
}

// allow returns false if an event for the file was allowed less than the
// window duration before now.
func (deb *debouncer) allow(name string, now time.Time) bool {
	if t, ok := deb.last[name]; ok && now.Sub(t) < deb.window {
		return false
	}
	deb.last[name] = now
	return true
}
