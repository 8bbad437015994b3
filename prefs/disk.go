// This file is part of ezsnes9x.
//
// ezsnes9x is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ezsnes9x is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ezsnes9x.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the setting and saving of preference values.
// Preference values are registered with a Disk instance under a unique key.
// The Save() and Load() functions transfer all registered values to and from
// the preferences file.
//
// The format of the preferences file is simple: one entry per line, the key
// and value separated by the entrySeparator. The first line of the file is
// the warning string, which identifies the file.
package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/adriaanm/ezsnes9x/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "ezsnes9x.prefs"

// the string the first line of a valid prefs file must contain.
const warning = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file entry.
const entrySeparator = " :: "

// sentinel error patterns returned by the prefs package.
const (
	// the file being loaded is not a valid prefs file.
	NotAPrefsFile = "prefs: not a valid prefs file (%s)"

	// a key has already been registered with the Disk instance.
	DuplicateKey = "prefs: key already registered (%s)"

	// keys must not contain the entry separator.
	InvalidKey = "prefs: invalid key (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the list of values registered with the Disk
// instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(entrySeparator)) {
		return curated.Errorf(InvalidKey, key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p

	return nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, entrySeparator, dsk.entries[k].String()))
	}
	return s.String()
}

// Save all registered preferences to the preferences file. Entries already in
// the file but not registered with this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	// load any existing entries so that keys belonging to other Disk
	// instances are not lost
	existing, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		existing[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	io.WriteString(f, warning+"\n")
	for _, k := range keys {
		io.WriteString(f, fmt.Sprintf("%s%s%s\n", k, entrySeparator, existing[k]))
	}

	return nil
}

// Load preference values from the preferences file. If saveOnMissing is true
// then a missing preferences file causes the current (ie. default) values to
// be saved, creating the file.
func (dsk *Disk) Load(saveOnMissing bool) error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	if len(entries) == 0 && saveOnMissing {
		return dsk.Save()
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			err := p.Set(v)
			if err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// read the preferences file into a map. a missing file is not an error and
// results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	// check validity of file by looking at the first line
	if sc.Scan() {
		if sc.Text() != warning {
			return nil, curated.Errorf(NotAPrefsFile, dsk.path)
		}
	}

	for sc.Scan() {
		s := strings.SplitN(sc.Text(), entrySeparator, 2)
		if len(s) != 2 {
			return nil, curated.Errorf(NotAPrefsFile, dsk.path)
		}
		entries[s[0]] = s[1]
	}

	return entries, nil
}
