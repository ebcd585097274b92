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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glsketch/moderngl/curated"
	"gopkg.in/yaml.v3"
)

// WarningBoilerPlate is the comment at the head of every prefs file.
const WarningBoilerPlate = "# moderngl preferences. edit only while the program is not running"

// Sentinel error patterns returned by the Disk type.
const (
	DuplicateKey = "prefs: duplicate key: %s"
	LoadError    = "prefs: load: %v"
	SaveError    = "prefs: save: %v"
	ValueError   = "prefs: %s: %v"
)

// Disk binds preference values to keys and saves them to a YAML file. The
// file is a flat mapping of key to value.
type Disk struct {
	path    string
	entries map[string]Pref

	// keys found in the file that have not been added to the Disk. they are
	// kept so that saving does not lose preferences belonging to other
	// parts of the program
	unknown map[string]any
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(LoadError, "no path specified")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
		unknown: make(map[string]any),
	}, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add a preference value to the Disk under the specified key.
func (dsk *Disk) Add(key string, p Pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns every key and value added to the Disk, one per line, sorted
// by key.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// Reset all preference values added to the Disk.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(ValueError, k, err)
		}
	}
	return nil
}

// Save current preference values to disk. Directories are created as
// required.
func (dsk *Disk) Save() error {
	data := make(map[string]any, len(dsk.entries)+len(dsk.unknown))
	for k, v := range dsk.unknown {
		data[k] = v
	}
	for k, p := range dsk.entries {
		data[k] = p.Get()
	}

	b, err := yaml.Marshal(data)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(SaveError, err)
	}

	b = append([]byte(fmt.Sprintf("%s\n", WarningBoilerPlate)), b...)
	if err := os.WriteFile(dsk.path, b, 0o600); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist it is created
// with the current values.
//
// After the file has been read, any values in the top group of the command
// line stack are applied. Command line values are used for the current
// session but are not themselves saved unless Save() is called explicitly.
func (dsk *Disk) Load() error {
	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(LoadError, err)
		}
		if err := dsk.Save(); err != nil {
			return err
		}
		return dsk.applyCommandLine()
	}

	data := make(map[string]any)
	if err := yaml.Unmarshal(b, &data); err != nil {
		return curated.Errorf(LoadError, err)
	}

	for k, v := range data {
		if v == nil {
			continue
		}
		p, ok := dsk.entries[k]
		if !ok {
			dsk.unknown[k] = v
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(ValueError, k, err)
		}
	}

	return dsk.applyCommandLine()
}

func (dsk *Disk) applyCommandLine() error {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(ValueError, k, err)
			}
		}
	}
	return nil
}
