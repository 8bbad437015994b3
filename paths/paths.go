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

// Package paths contains functions to prepare paths to ezsnes9x resources.
//
// The policy of ResourcePath() is simple: if the base resource path,
// currently defined to be ".ezsnes9x", is present in the program's current
// directory then that is the base path that will be used. If it is not
// present then the user's config directory is used. The package uses
// os.UserConfigDir() from the go standard library for this.
package paths

import (
	"os"
	"path/filepath"
)

// the base resource path.
const baseResourceDir = ".ezsnes9x"

// getBasePath returns the path into which resource files can be placed,
// creating the directory as necessary.
func getBasePath(subPth string) (string, error) {
	pth := filepath.Join(baseResourceDir, subPth)

	// check for the base resource directory in the current working directory
	// first. this allows a portable, project-local configuration which is
	// particularly useful during development
	if _, err := os.Stat(baseResourceDir); err != nil {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, baseResourceDir[1:], subPth)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", err
	}

	return pth, nil
}

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the appropriate resource path. The sub path can be
// empty.
func ResourcePath(subPth string, resource string) (string, error) {
	pth, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}

	return filepath.Join(pth, resource), nil
}
